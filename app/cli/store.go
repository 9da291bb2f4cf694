package main

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-share/persistence/v1/draft"
	"github.com/ribgsilva/note-share/platform/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"path/filepath"
	"time"
)

// DraftOptions selects where the draft is kept
type DraftOptions struct {
	DraftFile  string `help:"File the draft is kept in." env:"NOTES_DRAFT_FILE" type:"path"`
	DraftRedis string `help:"Redis address to share the draft between machines. Overrides the draft file." env:"NOTES_DRAFT_REDIS" default:""`
	LogLevel   string `help:"Log level written to stderr (debug, info, warn, error, off)." env:"NOTES_LOG_LEVEL" default:"off" enum:"debug,info,warn,error,off"`
}

// open returns the draft store and a func releasing it
func (o DraftOptions) open(ctx context.Context) (*draft.Store, func(), error) {
	if o.DraftRedis != "" {
		rdb := redis.NewClient(&redis.Options{Addr: o.DraftRedis})
		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		defer pingCancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
		}
		return draft.NewStore(draft.NewRedis(rdb, "notes:")), func() { _ = rdb.Close() }, nil
	}

	path := o.DraftFile
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, nil, fmt.Errorf("no draft file given and no config dir: %w", err)
		}
		path = filepath.Join(dir, "notes", "drafts.json")
	}
	return draft.NewStore(draft.NewFile(path)), func() {}, nil
}

func (o DraftOptions) logger() *zap.SugaredLogger {
	if o.LogLevel == "off" || o.LogLevel == "" {
		return zap.NewNop().Sugar()
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return zap.NewNop().Sugar()
	}
	log, err := logger.NewAt("Notes-CLI", lvl, "stderr")
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log
}

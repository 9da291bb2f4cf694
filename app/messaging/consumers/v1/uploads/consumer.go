package uploads

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/note-share/business/v1/upload"
	"github.com/ribgsilva/note-share/sys"
	"gocloud.dev/pubsub"
	"time"
)

// defaultVerifyTimeout applies when no storage operation timeout is configured
const defaultVerifyTimeout = 30 * time.Second

var verify = upload.Verify

// Consume receives upload events until ctx is cancelled and checks every
// announced object against the bucket, running at most maxWorkers checks at once.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan struct{}, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			var e struct {
				Type string          `json:"type"`
				Data upload.Uploaded `json:"data"`
			}
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case upload.EventCompleted:
				// a check already running finishes even when receiving stops
				vCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), verifyTimeout())
				defer cancel()

				if err := verify(vCtx, e.Data); err != nil {
					logger.Errorw("verify", "object", e.Data.Key, "ERROR", err)
					return
				}
				logger.Infow("verify", "object", e.Data.Key, "status", "ok")
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func verifyTimeout() time.Duration {
	if t := sys.Configs.Storage.OperationTimeout; t > 0 {
		return t
	}
	return defaultVerifyTimeout
}

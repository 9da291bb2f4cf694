package tests

import (
	"context"
	"github.com/ribgsilva/note-share/app/messaging/consumers/v1/uploads"
	"github.com/ribgsilva/note-share/business/v1/upload"
	"github.com/ribgsilva/note-share/sys"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"strings"
	"testing"
	"time"
)

type UploadTests struct {
	topic *pubsub.Topic
	logs  *observer.ObservedLogs
}

func TestUploadEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Storage.Folder = "notes_pdfs"
	sys.Configs.Storage.PublicURL = "http://localhost:8080/v1/files"
	sys.Configs.Storage.OperationTimeout = 5 * time.Second
	sys.Configs.Messaging.SendTimeout = 5 * time.Second
	sys.Configs.Messaging.ShutdownTimeout = 5 * time.Second

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = zap.New(core).Sugar()

	// bucket
	sys.R.Bucket = memblob.OpenBucket(nil)
	defer func() {
		_ = sys.R.Bucket.Close()
	}()

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()
	sys.R.Events = topic
	defer func() {
		sys.R.Events = nil
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	done := make(chan error, 1)
	go func() {
		done <- uploads.Consume(withCancel, subscription, 2)
	}()

	// =======================================================================================================
	// Run tests

	tests := UploadTests{topic: topic, logs: logs}

	tests.verified(t)
	tests.missing(t)

	cancelFunc()
	if err := <-done; err != nil {
		t.Fatal("listener error: ", err)
	}
}

func (ut *UploadTests) verified(t *testing.T) {
	up, err := upload.Upload(context.Background(), upload.NewUpload{Filename: "a.pdf", Body: strings.NewReader("%PDF-1.4")})
	if err != nil {
		t.Fatalf("Test verified: should upload: %v", err)
	}

	if !ut.waitFor(func(e observer.LoggedEntry) bool {
		return e.Message == "verify" && e.ContextMap()["object"] == up.Key && e.ContextMap()["status"] == "ok"
	}) {
		t.Fatalf("Test verified: should have verified %s: %v", up.Key, ut.logs.All())
	}
}

func (ut *UploadTests) missing(t *testing.T) {
	body := `{"type":"upload.completed","data":{"key":"notes_pdfs/0-ghost","fileUrl":"x","size":1}}`
	if err := ut.topic.Send(context.Background(), &pubsub.Message{Body: []byte(body)}); err != nil {
		t.Fatal("Test missing: failed to post message to topic: ", err)
	}

	if !ut.waitFor(func(e observer.LoggedEntry) bool {
		return e.Level == zapcore.ErrorLevel && e.ContextMap()["object"] == "notes_pdfs/0-ghost"
	}) {
		t.Fatalf("Test missing: should have reported the missing object: %v", ut.logs.All())
	}
}

func (ut *UploadTests) waitFor(match func(observer.LoggedEntry) bool) bool {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for _, e := range ut.logs.All() {
			if match(e) {
				return true
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	return false
}

package uploads

import (
	"context"
	"encoding/json"
	"github.com/ribgsilva/note-share/business/v1/upload"
	"github.com/ribgsilva/note-share/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"testing"
	"time"
)

func TestConsume_FinishesInFlightVerify(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sys.R.Log = zap.New(core).Sugar()
	sys.Configs.Storage.OperationTimeout = 5 * time.Second

	started := make(chan struct{})
	release := make(chan struct{})
	verifyErr := make(chan error, 1)
	verify = func(ctx context.Context, _ upload.Uploaded) error {
		close(started)
		<-release
		verifyErr <- ctx.Err()
		return ctx.Err()
	}
	defer func() {
		verify = upload.Verify
	}()

	topic := mempubsub.NewTopic()
	defer topic.Shutdown(context.Background())
	sub := mempubsub.NewSubscription(topic, time.Second)
	defer sub.Shutdown(context.Background())

	body, err := json.Marshal(upload.Event{Type: upload.EventCompleted, Data: upload.Uploaded{Key: "notes_pdfs/1-a", Size: 1}})
	require.NoError(t, err)
	require.NoError(t, topic.Send(context.Background(), &pubsub.Message{Body: body}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Consume(ctx, sub, 1)
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("verification never started")
	}
	cancel()
	close(release)

	require.NoError(t, <-done)
	assert.NoError(t, <-verifyErr)
	assert.Equal(t, 1, logs.FilterMessage("verify").FilterField(zap.String("status", "ok")).Len())
}

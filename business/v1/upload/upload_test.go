package upload

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/note-share/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"strings"
	"testing"
	"time"
)

func setup(t *testing.T) *pubsub.Subscription {
	t.Helper()
	ctx := context.Background()

	sys.R.Log = zap.NewNop().Sugar()
	sys.Configs.Storage.Folder = "notes_pdfs"
	sys.Configs.Storage.PublicURL = "https://files.example.com"
	sys.Configs.Storage.OperationTimeout = 5 * time.Second
	sys.Configs.Messaging.SendTimeout = 5 * time.Second

	sys.R.Bucket = memblob.OpenBucket(nil)
	topic := mempubsub.NewTopic()
	sub := mempubsub.NewSubscription(topic, time.Second)
	sys.R.Events = topic

	t.Cleanup(func() {
		_ = sub.Shutdown(ctx)
		_ = topic.Shutdown(ctx)
		_ = sys.R.Bucket.Close()
		sys.R.Events = nil
	})
	return sub
}

func TestUpload(t *testing.T) {
	sub := setup(t)
	ctx := context.Background()

	up, err := Upload(ctx, NewUpload{Filename: "lecture.pdf", Body: strings.NewReader("%PDF-1.7 body")})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.Key, "notes_pdfs/"))
	assert.True(t, strings.HasSuffix(up.Key, "-lecture"))
	assert.Equal(t, "https://files.example.com/"+up.Key, up.FileURL)
	assert.Equal(t, "application/pdf", up.ContentType)

	stored, err := sys.R.Bucket.ReadAll(ctx, up.Key)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 body", string(stored))

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	m, err := sub.Receive(recvCtx)
	require.NoError(t, err)
	m.Ack()

	var e struct {
		Type string   `json:"type"`
		Data Uploaded `json:"data"`
	}
	require.NoError(t, json.Unmarshal(m.Body, &e))
	assert.Equal(t, EventCompleted, e.Type)
	assert.Equal(t, up, e.Data)
}

func TestUpload_SameFilenameTwice(t *testing.T) {
	setup(t)
	ctx := context.Background()

	first, err := Upload(ctx, NewUpload{Filename: "same.pdf", Body: strings.NewReader("one")})
	require.NoError(t, err)
	second, err := Upload(ctx, NewUpload{Filename: "same.pdf", Body: strings.NewReader("two")})
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
	assert.NotEqual(t, first.FileURL, second.FileURL)

	one, err := sys.R.Bucket.ReadAll(ctx, first.Key)
	require.NoError(t, err)
	assert.Equal(t, "one", string(one))
}

func TestUpload_ProviderFailure(t *testing.T) {
	setup(t)
	ctx := context.Background()

	broken := memblob.OpenBucket(nil)
	require.NoError(t, broken.Close())
	healthy := sys.R.Bucket
	sys.R.Bucket = broken
	t.Cleanup(func() { sys.R.Bucket = healthy })

	_, err := Upload(ctx, NewUpload{Filename: "a.pdf", Body: strings.NewReader("x")})
	require.Error(t, err)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.True(t, strings.HasPrefix(pe.Key, "notes_pdfs/"))
}

func TestUpload_WithoutTopic(t *testing.T) {
	setup(t)
	sys.R.Events = nil

	_, err := Upload(context.Background(), NewUpload{Filename: "a.pdf", Body: strings.NewReader("x")})
	require.NoError(t, err)
}

func TestVerify(t *testing.T) {
	setup(t)
	ctx := context.Background()

	up, err := Upload(ctx, NewUpload{Filename: "a.pdf", Body: strings.NewReader("%PDF-1.4")})
	require.NoError(t, err)
	require.NoError(t, Verify(ctx, up))

	wrongSize := up
	wrongSize.Size++
	assert.ErrorIs(t, Verify(ctx, wrongSize), ErrSizeMismatch)

	missing := up
	missing.Key = "notes_pdfs/0-missing"
	assert.ErrorIs(t, Verify(ctx, missing), ErrObjectMissing)
}

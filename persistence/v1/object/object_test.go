package object

import (
	"context"
	"errors"
	"github.com/ribgsilva/note-share/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"io"
	"strings"
	"testing"
	"time"
)

func setup(t *testing.T) {
	t.Helper()
	sys.Configs.Storage.Folder = "notes_pdfs"
	sys.Configs.Storage.PublicURL = "https://files.example.com/"
	sys.Configs.Storage.OperationTimeout = 5 * time.Second
	sys.R.Bucket = memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = sys.R.Bucket.Close() })
}

func TestKeyAndURL(t *testing.T) {
	setup(t)

	assert.Equal(t, "notes_pdfs/1-a b", Key("1-a b"))
	assert.Equal(t, "https://files.example.com/notes_pdfs/1-a%20b", URL(Key("1-a b")))

	sys.Configs.Storage.Folder = ""
	assert.Equal(t, "x", Key("x"))
}

func TestPutOpenList(t *testing.T) {
	setup(t)
	ctx := context.Background()

	o, err := Put(ctx, Key("1-doc"), strings.NewReader("%PDF-1.4\n%fake"))
	require.NoError(t, err)
	assert.Equal(t, "notes_pdfs/1-doc", o.Key)
	assert.Equal(t, "https://files.example.com/notes_pdfs/1-doc", o.URL)
	assert.EqualValues(t, len("%PDF-1.4\n%fake"), o.Size)
	assert.Equal(t, "application/pdf", o.ContentType)

	r, ok, err := Open(ctx, o.Key)
	require.NoError(t, err)
	require.True(t, ok)
	body, _ := io.ReadAll(r)
	_ = r.Close()
	assert.Equal(t, "%PDF-1.4\n%fake", string(body))

	_, ok, err = Open(ctx, Key("missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, sys.R.Bucket.WriteAll(ctx, "elsewhere/x", []byte("x"), nil))
	list, err := List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "notes_pdfs/1-doc", list[0].Key)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func TestPut_ReadError(t *testing.T) {
	setup(t)
	ctx := context.Background()

	_, err := Put(ctx, Key("broken"), failingReader{})
	require.Error(t, err)

	exists, err := sys.R.Bucket.Exists(ctx, Key("broken"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStat(t *testing.T) {
	setup(t)
	ctx := context.Background()

	require.NoError(t, sys.R.Bucket.WriteAll(ctx, Key("1-a"), []byte("%PDF-1.4"), nil))

	o, ok, err := Stat(ctx, Key("1-a"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 8, o.Size)
	assert.Equal(t, "application/pdf", o.ContentType)

	_, ok, err = Stat(ctx, Key("nope"))
	require.NoError(t, err)
	assert.False(t, ok)
}

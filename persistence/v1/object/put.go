package object

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-share/sys"
	"io"
)

// Put streams r into the bucket under key. The content type is left for the
// driver to detect from the first bytes written.
func Put(ctx context.Context, key string, r io.Reader) (Object, error) {
	bucket := sys.R.Bucket

	opCtx, opCancel := context.WithTimeout(ctx, sys.Configs.Storage.OperationTimeout)
	defer opCancel()

	w, err := bucket.NewWriter(opCtx, key, nil)
	if err != nil {
		return Object{}, fmt.Errorf("failed to open writer: %w", err)
	}
	if _, err := io.Copy(w, r); err != nil {
		opCancel()
		_ = w.Close()
		return Object{}, fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return Object{}, fmt.Errorf("failed to close writer: %w", err)
	}

	attrs, err := bucket.Attributes(opCtx, key)
	if err != nil {
		return Object{}, fmt.Errorf("failed to read attributes: %w", err)
	}

	return Object{
		Key:         key,
		URL:         URL(key),
		Size:        attrs.Size,
		ContentType: attrs.ContentType,
	}, nil
}

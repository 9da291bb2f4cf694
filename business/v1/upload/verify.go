package upload

import (
	"context"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-share/persistence/v1/object"
)

var (
	ErrObjectMissing = errors.New("announced object does not exist")
	ErrSizeMismatch  = errors.New("announced size differs from stored size")
)

// Verify checks an announced upload against what the bucket actually holds
func Verify(ctx context.Context, up Uploaded) error {
	o, ok, err := object.Stat(ctx, up.Key)
	switch {
	case err != nil:
		return &ProviderError{Key: up.Key, Err: err}
	case !ok:
		return fmt.Errorf("%s: %w", up.Key, ErrObjectMissing)
	case o.Size != up.Size:
		return fmt.Errorf("%s: %w: announced %d, stored %d", up.Key, ErrSizeMismatch, up.Size, o.Size)
	}
	return nil
}

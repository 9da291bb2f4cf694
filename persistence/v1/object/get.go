package object

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-share/sys"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	"net/url"
	"strings"
)

// Open returns a reader over the object stored under key. ok is false when the object does not exist.
// The caller closes the reader.
func Open(ctx context.Context, key string) (r *blob.Reader, ok bool, err error) {
	r, err = sys.R.Bucket.NewReader(ctx, key, nil)
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to open reader: %w", err)
	default:
		return r, true, nil
	}
}

// URL is the public address of key
func URL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.TrimRight(sys.Configs.Storage.PublicURL, "/") + "/" + strings.Join(parts, "/")
}

// Key places name inside the configured folder
func Key(name string) string {
	folder := strings.Trim(sys.Configs.Storage.Folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// Stat returns the stored attributes of key. ok is false when the object does not exist.
func Stat(ctx context.Context, key string) (o Object, ok bool, err error) {
	attrs, err := sys.R.Bucket.Attributes(ctx, key)
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		return Object{}, false, nil
	case err != nil:
		return Object{}, false, fmt.Errorf("failed to read attributes: %w", err)
	default:
		return Object{Key: key, URL: URL(key), Size: attrs.Size, ContentType: attrs.ContentType}, true, nil
	}
}

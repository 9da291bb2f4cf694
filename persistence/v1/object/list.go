package object

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-share/sys"
	"gocloud.dev/blob"
	"io"
)

// List returns every object stored inside the configured folder
func List(ctx context.Context) ([]Object, error) {
	it := sys.R.Bucket.List(&blob.ListOptions{Prefix: Key("")})

	var out []Object
	for {
		o, err := it.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		if o.IsDir {
			continue
		}
		out = append(out, Object{Key: o.Key, URL: URL(o.Key), Size: o.Size})
	}
	return out, nil
}

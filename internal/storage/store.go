package storage

import (
	"context"
	"io"
)

// Store is a file storage backend. Paths are slash-separated and relative to the store root.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

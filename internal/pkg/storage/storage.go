package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded files live. Paths are relative to the
// storage root.
type Storage interface {
	// Save writes content at path, creating parent directories as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Open returns a reader for the file at path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes the file at path. Removing a missing file is not an error.
	Remove(ctx context.Context, path string) error
}

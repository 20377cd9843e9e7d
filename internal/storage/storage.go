package storage

import (
	"context"
	"io"
)

// Storage is the seam for media file persistence.
type Storage interface {
	// Save stores a file at the given relative path.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get opens a stored file for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored file.
	URL(path string) string
}

// Config holds storage configuration.
type Config struct {
	BasePath string
	BaseURL  string
}

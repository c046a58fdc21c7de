package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where profile photos live. Only a local-disk
// implementation exists today.
type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns the public URL for a stored path
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}

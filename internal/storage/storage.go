package storage

import (
	"context"
	"io"
)

// Storage defines the interface for uploaded-file operations.
// Implementations can use the local filesystem or any other backend.
type Storage interface {
	// Put stores a file and returns its URL/path for retrieval.
	// The key should be a unique identifier (e.g., "1700000000-lipstick.jpg").
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)

	// Delete removes a file by its key.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for accessing a stored file.
	// For local storage this is a relative path.
	URL(key string) string

	// Exists checks if a file exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

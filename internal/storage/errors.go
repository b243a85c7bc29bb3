package storage

import (
	"errors"
	"fmt"
)

// fileNotFoundError indicates a key has no stored file behind it.
type fileNotFoundError struct {
	key string
}

func (e *fileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.key)
}

// ErrFileNotFound creates a not-found error for the given key.
func ErrFileNotFound(key string) error {
	return &fileNotFoundError{key: key}
}

// IsNotFound reports whether err indicates a missing file.
func IsNotFound(err error) bool {
	var e *fileNotFoundError
	return errors.As(err, &e)
}

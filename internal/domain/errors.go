package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that the referenced asset does not exist
var ErrNotFound = errors.New("not found")

// ErrValidation indicates that input data failed validation checks
var ErrValidation = errors.New("validation error")

// StorageError wraps a failure to read, write or remove a persisted document
type StorageError struct {
	Op  string // "read", "write", "remove", "encode" or "decode"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AssetNotFound returns an ErrNotFound wrapped with the asset id
func AssetNotFound(id string) error {
	return fmt.Errorf("asset with id %s: %w", id, ErrNotFound)
}

package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the target expense does not exist or belongs
// to a different owner. The two cases are deliberately merged so callers
// cannot probe for other users' records.
var ErrNotFound = errors.New("expense not found")

// ValidationError reports an input that violates a data-model invariant.
// It is raised before any store mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a failure of the underlying store that is unrelated to
// the data model (connectivity, storage-layer constraint rejection). The
// service never retries; recovery is the caller's decision.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

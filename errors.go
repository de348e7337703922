package storage

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for the failure taxonomy. Every operation wraps one of
// these (or the raw OS error) so callers can match with errors.Is.
var (
	// ErrNotFound reports a path that is missing or of the wrong entry
	// type for the requested operation.
	ErrNotFound = errors.New("storage: not found")

	// ErrPermission reports an OS call that failed despite correct
	// preconditions, typically a permission check.
	ErrPermission = errors.New("storage: permission denied")

	// ErrConflict reports a target path occupied by the wrong entry type,
	// such as a file where a directory is needed.
	ErrConflict = errors.New("storage: path conflict")

	// ErrEnumeration reports a directory listing that failed mid-walk.
	ErrEnumeration = errors.New("storage: enumeration failed")
)

// notFound builds a typed error for a missing or wrong-type path.
func notFound(op, path string) error {
	return fmt.Errorf("%s %s: %w", op, path, ErrNotFound)
}

// osError converts an OS failure into the library's taxonomy while keeping
// the original error text.
func osError(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s %s: %v: %w", op, path, err, ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s %s: %v: %w", op, path, err, ErrPermission)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%s %s: %v: %w", op, path, err, ErrConflict)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}

// enumError builds a typed error for a failed directory enumeration.
func enumError(op, path string, err error) error {
	return fmt.Errorf("%s %s: %v: %w", op, path, err, ErrEnumeration)
}

package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid configuration or bundle manifest.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a bundle route or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrSourceUnreadable indicates a file could not be read while computing
	// its version token.
	ErrSourceUnreadable = errors.New("source unreadable")
)

package catalog

import "errors"

// Sentinel errors the controllers translate into HTTP responses. Anything
// else coming out of this package is a persistence failure: callers log the
// cause and answer with a generic 500.
var (
	// ErrConflict marks a uniqueness violation (duplicate enrollment or review)
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks a missing referenced entity (user, course, lesson)
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed input caught before any write
	ErrValidation = errors.New("validation")
)

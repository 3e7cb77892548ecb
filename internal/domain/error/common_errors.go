// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Error kinds shared by every aggregate. Domain sentinels wrap one of these so
// callers can classify a failure with errors.Is without knowing the aggregate.
var (
	// ErrUnauthenticated is returned when no current user can be resolved.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound is returned when a record does not exist or belongs to another user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a write races with another write on the same record.
	ErrConflict = errors.New("conflict")

	// ErrInvalidSortKey is returned when a listing is requested with an unknown ordering.
	ErrInvalidSortKey = errors.New("invalid sort key")
)

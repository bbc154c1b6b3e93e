package port

import "errors"

// Sentinel errors shared across ports. Usecases and repositories wrap
// these with context; the HTTP adapter maps them to status codes.
var (
	// ErrNotFound marks a missing entity or an empty selection result.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrPermissionDenied marks a caller lacking the role, ownership or
	// verification required for an operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidTransition marks an illegal state-machine move.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrConflict marks a lost optimistic-concurrency race or a
	// duplicate insert.
	ErrConflict = errors.New("conflict")
)

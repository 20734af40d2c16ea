package domain

import "errors"

var (
	// ErrValidation marks malformed or missing input. Mapped to HTTP 400.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a reference to a record that does not exist. Mapped to HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks an operation rejected by the current record state. Mapped to HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized marks a missing or invalid admin session. Mapped to HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")
)

// Package apperr defines the domain error taxonomy shared by all services.
// Services wrap these sentinels with fmt.Errorf("%w: ...") so handlers can
// map them to HTTP status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrValidation marks malformed input, invalid enum values or references
	// to unknown/inactive entities.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks operations targeting a nonexistent id.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks uniqueness violations: duplicate active plan,
	// duplicate monthly payment for a period, entities still referenced.
	ErrConflict = errors.New("conflict")
)

package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match with errors.Is; the concrete reason travels in
// the wrapped message.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

func NewValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

func NewForbiddenError(reason string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}

func NewConflictError(reason string) error {
	return fmt.Errorf("%w: %s", ErrConflict, reason)
}

package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrAlreadyAccepted  = errors.New("lead already accepted")
	ErrNotAvailable     = errors.New("domain is not available")
	ErrItemNotInCart    = errors.New("item not found in cart")
	ErrItemAlreadyAdded = errors.New("item already in cart")
)

// ValidationError describes one rejected field value and unwraps to ErrValidation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition  = errors.New("action not allowed in the current booking step")
	ErrBusNotFound        = errors.New("bus not found")
	ErrBusSoldOut         = errors.New("bus has no available seats")
	ErrNoSeatsSelected    = errors.New("no seats selected")
	ErrSeatMismatch       = errors.New("passengers do not match the selected seats")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotCancellable     = errors.New("booking can no longer be cancelled")
	ErrDuplicateBookingID = errors.New("booking id already exists")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrSessionNotFound    = errors.New("booking session not found")
)

// ValidationError reports the first required field found empty.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is required", e.Field)
}

func missing(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

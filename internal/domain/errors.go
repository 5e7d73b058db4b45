package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an input value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidDate is returned when a calendar date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange is returned when a numeric input falls outside its domain.
	ErrOutOfRange = errors.New("value out of range")
)

// ValidationError describes a problem with a single input field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the underlying error so errors.Is works on the chain.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrUnavailable   = errors.New("unavailable")

	// ErrInvalidSchedule is matched by errors.Is for every *InvalidScheduleError.
	// It is a validation failure, so errors.Is(err, ErrValidation) also holds.
	ErrInvalidSchedule = fmt.Errorf("invalid schedule: %w", ErrValidation)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// InvalidScheduleError reports a non-positive watering cadence.
// It is a caller-input problem and is never retried.
type InvalidScheduleError struct {
	FrequencyDays int
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid schedule: watering frequency must be a positive number of days (got %d)", e.FrequencyDays)
}

func (e *InvalidScheduleError) Unwrap() error { return ErrInvalidSchedule }

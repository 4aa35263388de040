package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownFormat is returned when a format ID is not in the catalog.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrCustomFormatRequired is returned when the custom format is selected
	// without a format description.
	ErrCustomFormatRequired = errors.New("custom format text is required for the custom format")

	// ErrUnsupportedLanguage is returned for a language outside the supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidMode is returned when the content mode is neither viral nor organic.
	ErrInvalidMode = errors.New("invalid content mode")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)

// ValidationError describes a single invalid field. It wraps ErrValidation so
// callers can match the whole family with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap exposes both the specific cause and ErrValidation.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrValidation, e.Err}
	}
	return []error{ErrValidation}
}

func newValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

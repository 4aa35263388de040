package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/preferences"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps a pipeline or preferences error to an HTTP status.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrSetup):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrValidation), errors.Is(err, preferences.ErrInvalidPreferences):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Upstream
// bodies and key material never appear in it.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return unexpectedErrorMessage
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, generation.ErrSetup):
		return "Setup incomplete: configure your API key and business description"
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
	case errors.Is(err, preferences.ErrInvalidPreferences):
		return "Saved preferences are invalid"
	case errors.Is(err, context.DeadlineExceeded):
		return "Generation timed out"
	default:
		return unexpectedErrorMessage
	}
}

// SanitizeValidationError turns a validator error into "Invalid <Field>: <reason>"
// for the first failing field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Validation error"
	}

	fe := fieldErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

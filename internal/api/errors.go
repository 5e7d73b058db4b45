package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/edulens/edulens-api/internal/api/shared"
	"github.com/edulens/edulens-api/internal/domain"
	"github.com/edulens/edulens-api/internal/domain/textbook"
	"github.com/edulens/edulens-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError
	var validationErrs validator.ValidationErrors

	switch {
	// Not found errors
	case errors.Is(err, textbook.ErrWordbookNotFound),
		errors.Is(err, textbook.ErrUnitOutOfRange):
		return http.StatusNotFound

	// Payload size errors
	case errors.Is(err, service.ErrTooManyLabels),
		errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrOutOfRange),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var valErr *domain.ValidationError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &valErr):
		return fmt.Sprintf("Invalid %s: %s", valErr.Field, valErr.Message)

	case errors.Is(err, textbook.ErrWordbookNotFound):
		return "Wordbook not found"

	case errors.Is(err, textbook.ErrUnitOutOfRange):
		return "Unit not found"

	case errors.Is(err, service.ErrTooManyLabels):
		return fmt.Sprintf("Too many labels (limit %d)", service.MaxLabels)

	case errors.As(err, &maxBytesErr):
		return "Request body too large"

	case errors.Is(err, domain.ErrInvalidDate):
		return "Invalid date"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrOutOfRange):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag(), fe.Param()))
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "must be at least " + param
	case "max", "lte":
		return "must be at most " + param
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. When fallbackMessage is
// empty the message is derived from the error with GetSafeErrorMessage.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)

	message := fallbackMessage
	if message == "" {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			message = SanitizeValidationError(err)
		} else {
			message = GetSafeErrorMessage(err)
		}
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

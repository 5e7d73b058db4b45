package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edulens/edulens-api/internal/api/shared"
	"github.com/edulens/edulens-api/internal/domain"
)

// getPathInt extracts a positive integer from the URL path parameters.
//
// Parameters:
//   - r: The HTTP request
//   - paramName: The name of the path parameter to extract
//
// Returns:
//   - (n, nil): The parsed value if it is a positive integer
//   - (0, error): A validation error if the parameter is missing or malformed
func getPathInt(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	n, err := strconv.Atoi(pathParam)
	if err != nil || n < 1 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidFormat)
	}

	return n, nil
}

// decodeAndValidate decodes the JSON body into req and validates it,
// writing the error response itself on failure.
//
// Returns:
//   - true: req is populated and valid
//   - false: an error response has been written
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		if MapErrorToStatusCode(err) == http.StatusRequestEntityTooLarge {
			HandleAPIError(w, r, err, "")
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulens/edulens-api/internal/api/shared"
	"github.com/edulens/edulens-api/internal/domain"
	"github.com/edulens/edulens-api/internal/domain/textbook"
	"github.com/edulens/edulens-api/internal/service"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "wordbook not found",
			err:            textbook.ErrWordbookNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped unit out of range",
			err:            fmt.Errorf("%w: leap has 4 units, got 5", textbook.ErrUnitOutOfRange),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "too many labels",
			err:            fmt.Errorf("%w: got 1001", service.ErrTooManyLabels),
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:           "body too large",
			err:            &http.MaxBytesError{Limit: shared.MaxBodyBytes},
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:           "validation error",
			err:            domain.NewValidationError("target_page", "must not be negative", domain.ErrValidation),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid date",
			err:            fmt.Errorf("parse: %w", domain.ErrInvalidDate),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "out of range",
			err:            domain.NewValidationError("weekday_hours", "must be between 0 and 24", domain.ErrOutOfRange),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validator error",
			err:            shared.Validate.Struct(LabelsRequest{}),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("something broke"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"wordbook not found", textbook.ErrWordbookNotFound, "Wordbook not found"},
		{"unit out of range", fmt.Errorf("%w: x", textbook.ErrUnitOutOfRange), "Unit not found"},
		{"too many labels", service.ErrTooManyLabels, "Too many labels (limit 1000)"},
		{
			"validation error names the field",
			domain.NewValidationError("deadline", "must be a date in YYYY-MM-DD format", domain.ErrInvalidDate),
			"Invalid deadline: must be a date in YYYY-MM-DD format",
		},
		{"bare invalid date", domain.ErrInvalidDate, "Invalid date"},
		{"internal details hidden", errors.New("open /etc/edulens/config.yaml: denied"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	negative := -1
	tests := []struct {
		name     string
		req      interface{}
		expected string
	}{
		{"required", LabelsRequest{}, "Invalid labels: required field"},
		{"gte", DeadlineRequest{CurrentPage: &negative, TargetPage: &negative}, "Invalid current_page: must be at least 0"},
		{"lte", StudyTimeRequest{ExamDate: "2027-01-16", WeekendHours: ptr(25.0)}, "Invalid weekend_hours: must be at most 24"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SanitizeValidationError(shared.Validate.Struct(tt.req)))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("plain")))
}

func ptr[T any](v T) *T { return &v }

package api

import (
	"github.com/edulens/edulens-api/internal/domain/textbook"
	"github.com/edulens/edulens-api/internal/service"
)

// DeadlineRequest defines the payload for the deadline planning endpoint.
type DeadlineRequest struct {
	CurrentPage *int `json:"current_page" validate:"required,gte=0"`
	TargetPage  *int `json:"target_page"  validate:"required,gte=0"`
	// Deadline is YYYY-MM-DD or RFC 3339. Omit it for an open-ended workbook.
	Deadline string `json:"deadline,omitempty"`
}

// StudyTimeRequest defines the payload for the study-time endpoint.
// Omitted optional fields use the server's configured defaults.
type StudyTimeRequest struct {
	ExamDate     string   `json:"exam_date"               validate:"required"`
	WeekdayHours *float64 `json:"weekday_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	WeekendHours *float64 `json:"weekend_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	SubjectCount *int     `json:"subject_count,omitempty" validate:"omitempty,gte=1,lte=20"`
}

// LabelsRequest defines the payload for the label normalize and group endpoints.
type LabelsRequest struct {
	Labels []string `json:"labels" validate:"required"`
}

// NormalizeResponse pairs every submitted label with its canonical name.
type NormalizeResponse struct {
	Names []string `json:"names"`
}

// WordbookListResponse is the body of GET /api/wordbooks.
type WordbookListResponse struct {
	Wordbooks []service.WordbookDetail `json:"wordbooks"`
}

// PagesResponse is the body of GET /api/wordbooks/{slug}/pages.
type PagesResponse struct {
	Slug  string             `json:"slug"`
	Pages []service.UnitPage `json:"pages"`
}

// GroupResponse is the body of POST /api/textbooks/group.
type GroupResponse = textbook.Grouping

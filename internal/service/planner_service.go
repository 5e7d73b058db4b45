package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/edulens/edulens-api/internal/config"
	"github.com/edulens/edulens-api/internal/domain"
	"github.com/edulens/edulens-api/internal/domain/planner"
	"github.com/edulens/edulens-api/internal/platform/logger"
)

// ExamYearResult is the exam year resolved for a given day.
type ExamYearResult struct {
	ExamYear int          `json:"exam_year"`
	AsOf     planner.Date `json:"as_of"`
}

// DeadlineQuery is a workbook's progress and optional deadline.
type DeadlineQuery struct {
	CurrentPage int
	TargetPage  int
	// Deadline is YYYY-MM-DD or RFC 3339; empty means no deadline.
	Deadline string
}

// DeadlinePlan is the pace plan derived from a DeadlineQuery. Optional
// values are nil when they cannot be computed.
type DeadlinePlan struct {
	Today         planner.Date           `json:"today"`
	Deadline      *planner.Date          `json:"deadline,omitempty"`
	DeadlineLabel string                 `json:"deadline_label,omitempty"`
	DaysLeft      *int                   `json:"days_left,omitempty"`
	DailyTarget   *int                   `json:"daily_target,omitempty"`
	Progress      int                    `json:"progress"`
	Status        planner.DeadlineStatus `json:"status"`
	Urgent        bool                   `json:"urgent"`
}

// StudyTimeQuery asks how much study fits before an exam. Nil fields fall
// back to the configured defaults.
type StudyTimeQuery struct {
	ExamDate     string
	WeekdayHours *float64
	WeekendHours *float64
	Subjects     *int
}

// StudyTimePlan is a study-time estimate together with the inputs used.
type StudyTimePlan struct {
	Today        planner.Date `json:"today"`
	ExamDate     planner.Date `json:"exam_date"`
	WeekdayHours float64      `json:"weekday_hours"`
	WeekendHours float64      `json:"weekend_hours"`
	Subjects     int          `json:"subjects"`
	planner.StudyTimeResult
}

// PlannerService defines the study-planner operations.
type PlannerService interface {
	// ExamYear resolves the entrance-exam year as of now.
	ExamYear(ctx context.Context) ExamYearResult

	// DeadlinePlan computes days left and the daily page target.
	DeadlinePlan(ctx context.Context, q DeadlineQuery) (*DeadlinePlan, error)

	// StudyTime estimates available study hours before an exam.
	StudyTime(ctx context.Context, q StudyTimeQuery) (*StudyTimePlan, error)
}

type plannerService struct {
	clock    Clock
	defaults config.PlannerConfig
	logger   *slog.Logger
}

// NewPlannerService creates a PlannerService. clock and logger are required.
func NewPlannerService(clock Clock, defaults config.PlannerConfig, logger *slog.Logger) PlannerService {
	if clock == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("clock cannot be nil for PlannerService")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlannerService")
	}
	return &plannerService{
		clock:    clock,
		defaults: defaults,
		logger:   logger.With(slog.String("component", "planner_service")),
	}
}

func (s *plannerService) today() planner.Date {
	return planner.DateOf(s.clock())
}

func (s *plannerService) ExamYear(ctx context.Context) ExamYearResult {
	now := s.clock()
	result := ExamYearResult{
		ExamYear: planner.ResolveExamYear(now),
		AsOf:     planner.DateOf(now),
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("resolved exam year",
		slog.Int("exam_year", result.ExamYear),
		slog.String("as_of", result.AsOf.String()))

	return result
}

func (s *plannerService) DeadlinePlan(ctx context.Context, q DeadlineQuery) (*DeadlinePlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if q.CurrentPage < 0 {
		return nil, domain.NewValidationError("current_page", "must not be negative", domain.ErrValidation)
	}
	if q.TargetPage < 0 {
		return nil, domain.NewValidationError("target_page", "must not be negative", domain.ErrValidation)
	}

	deadline, err := parseOptionalDate("deadline", q.Deadline)
	if err != nil {
		return nil, err
	}

	today := s.today()
	plan := &DeadlinePlan{
		Today:    today,
		Deadline: deadline,
		Progress: planner.Progress(q.CurrentPage, q.TargetPage),
		Status:   planner.StatusOf(deadline, today),
		Urgent:   planner.IsUrgent(deadline, today),
	}
	if deadline != nil {
		plan.DeadlineLabel = deadline.FormatJP()
	}
	if days, ok := planner.DaysUntil(deadline, today); ok {
		plan.DaysLeft = &days
	}
	if pace, ok := planner.DailyTarget(q.CurrentPage, q.TargetPage, deadline, today); ok {
		plan.DailyTarget = &pace
	}

	log.Debug("computed deadline plan",
		slog.String("today", today.String()),
		slog.String("status", string(plan.Status)),
		slog.Int("progress", plan.Progress))

	return plan, nil
}

func (s *plannerService) StudyTime(ctx context.Context, q StudyTimeQuery) (*StudyTimePlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	examDate, err := parseOptionalDate("exam_date", q.ExamDate)
	if err != nil {
		return nil, err
	}
	if examDate == nil {
		return nil, domain.NewValidationError("exam_date", "is required", domain.ErrValidation)
	}

	weekday := valueOr(q.WeekdayHours, s.defaults.DefaultWeekdayHours)
	weekend := valueOr(q.WeekendHours, s.defaults.DefaultWeekendHours)
	subjects := valueOr(q.Subjects, s.defaults.DefaultSubjects)

	switch {
	case weekday < 0 || weekday > 24:
		return nil, domain.NewValidationError("weekday_hours", "must be between 0 and 24", domain.ErrOutOfRange)
	case weekend < 0 || weekend > 24:
		return nil, domain.NewValidationError("weekend_hours", "must be between 0 and 24", domain.ErrOutOfRange)
	case subjects < 1:
		return nil, domain.NewValidationError("subject_count", "must be at least 1", domain.ErrOutOfRange)
	}

	today := s.today()
	result := planner.StudyTime(planner.StudyTimeInput{
		Today:        today,
		ExamDate:     *examDate,
		WeekdayHours: weekday,
		WeekendHours: weekend,
		Subjects:     subjects,
	})

	log.Debug("computed study time",
		slog.String("exam_date", examDate.String()),
		slog.Int("days", result.Days.Total),
		slog.Int("total_hours", result.TotalHours))

	return &StudyTimePlan{
		Today:           today,
		ExamDate:        *examDate,
		WeekdayHours:    weekday,
		WeekendHours:    weekend,
		Subjects:        subjects,
		StudyTimeResult: result,
	}, nil
}

// parseOptionalDate parses raw, returning nil for a blank value.
func parseOptionalDate(field, raw string) (*planner.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := planner.ParseDate(raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format",
			fmt.Errorf("%w: %w", domain.ErrValidation, err))
	}
	return &d, nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

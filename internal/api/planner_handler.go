package api

import (
	"log/slog"
	"net/http"

	"github.com/edulens/edulens-api/internal/api/shared"
	"github.com/edulens/edulens-api/internal/platform/logger"
	"github.com/edulens/edulens-api/internal/service"
)

// PlannerHandler handles exam-year, deadline and study-time requests.
type PlannerHandler struct {
	plannerService service.PlannerService
	logger         *slog.Logger
}

// NewPlannerHandler creates a new PlannerHandler
func NewPlannerHandler(plannerService service.PlannerService, logger *slog.Logger) *PlannerHandler {
	if plannerService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("plannerService cannot be nil for PlannerHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlannerHandler")
	}

	return &PlannerHandler{
		plannerService: plannerService,
		logger:         logger.With(slog.String("component", "planner_handler")),
	}
}

// GetExamYear handles GET /api/exam-year requests.
func (h *PlannerHandler) GetExamYear(w http.ResponseWriter, r *http.Request) {
	result := h.plannerService.ExamYear(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// PlanDeadline handles POST /api/planner/deadline requests.
// It returns the days left before the deadline and the daily page target.
func (h *PlannerHandler) PlanDeadline(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req DeadlineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := h.plannerService.DeadlinePlan(r.Context(), service.DeadlineQuery{
		CurrentPage: *req.CurrentPage,
		TargetPage:  *req.TargetPage,
		Deadline:    req.Deadline,
	})
	if err != nil {
		log.Debug("deadline plan rejected", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, plan)
}

// EstimateStudyTime handles POST /api/planner/study-time requests.
func (h *PlannerHandler) EstimateStudyTime(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StudyTimeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := h.plannerService.StudyTime(r.Context(), service.StudyTimeQuery{
		ExamDate:     req.ExamDate,
		WeekdayHours: req.WeekdayHours,
		WeekendHours: req.WeekendHours,
		Subjects:     req.SubjectCount,
	})
	if err != nil {
		log.Debug("study time estimate rejected", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, plan)
}

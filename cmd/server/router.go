package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/edulens/edulens-api/internal/api"
	apiMiddleware "github.com/edulens/edulens-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	plannerHandler := api.NewPlannerHandler(app.plannerService, app.logger)
	textbookHandler := api.NewTextbookHandler(app.textbookService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Study planner endpoints
		r.Get("/exam-year", plannerHandler.GetExamYear)
		r.Post("/planner/deadline", plannerHandler.PlanDeadline)
		r.Post("/planner/study-time", plannerHandler.EstimateStudyTime)

		// Textbook label endpoints
		r.Post("/textbooks/normalize", textbookHandler.NormalizeLabels)
		r.Post("/textbooks/group", textbookHandler.GroupLabels)

		// Wordbook endpoints
		r.Get("/wordbooks", textbookHandler.ListWordbooks)
		r.Get("/wordbooks/{slug}", textbookHandler.GetWordbook)
		r.Get("/wordbooks/{slug}/units/{unit}", textbookHandler.GetUnit)
		r.Get("/wordbooks/{slug}/pages", textbookHandler.ListPages)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edulens/edulens-api/internal/config"
	"github.com/edulens/edulens-api/internal/domain/textbook"
	"github.com/edulens/edulens-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Service interfaces
	plannerService  service.PlannerService
	textbookService service.TextbookService
}

// newApplication creates a new application instance with all dependencies
// initialized. The wall clock is used for "now".
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	return newApplicationWithClock(cfg, logger, service.SystemClock)
}

// newApplicationWithClock is newApplication with an explicit clock.
func newApplicationWithClock(cfg *config.Config, logger *slog.Logger, clock service.Clock) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	catalog := textbook.DefaultCatalog()
	logger.Info("Wordbook catalog loaded", slog.Int("wordbooks", len(catalog.All())))

	app.plannerService = service.NewPlannerService(clock, cfg.Planner, logger)
	app.textbookService = service.NewTextbookService(catalog, cfg.Site, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the server
// fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router, nil); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

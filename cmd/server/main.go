// Package main implements the entry point for the EduLens API server, which
// serves the study-planner and textbook computations used by the website.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edulens/edulens-api/internal/config"
	"github.com/edulens/edulens-api/internal/platform/logger"
)

// main is the entry point for the edulens-api server.
// It loads configuration, sets up logging, wires the services and serves
// HTTP until SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Application exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("site_base_url", cfg.Site.BaseURL))

	return cfg, appLogger, nil
}

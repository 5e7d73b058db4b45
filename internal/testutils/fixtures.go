package testutils

import (
	"time"

	"github.com/edulens/edulens-api/internal/config"
	"github.com/edulens/edulens-api/internal/domain/planner"
)

// Now is the instant test clocks report: Friday 2026-10-16, 09:00 in Tokyo.
var Now = time.Date(2026, 10, 16, 9, 0, 0, 0, planner.Tokyo)

// TestConfig returns a valid configuration with the production defaults and
// debug logging.
func TestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			ShutdownTimeout: 5 * time.Second,
		},
		Site: config.SiteConfig{
			BaseURL:      "https://edulens.jp",
			TextbookPath: "/mistap/textbook",
		},
		Planner: config.PlannerConfig{
			DefaultWeekdayHours: 3,
			DefaultWeekendHours: 8,
			DefaultSubjects:     5,
		},
	}
}

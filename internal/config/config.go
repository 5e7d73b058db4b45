package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Site    SiteConfig    `mapstructure:"site"    validate:"required"`
	Planner PlannerConfig `mapstructure:"planner" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// SiteConfig describes where the public site serves generated pages.
type SiteConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// TextbookPath is the path prefix of the per-unit wordbook pages.
	TextbookPath string `mapstructure:"textbook_path" validate:"required,startswith=/"`
}

// PlannerConfig holds the study-time calculator defaults used when a request
// leaves a slider unset.
type PlannerConfig struct {
	DefaultWeekdayHours float64 `mapstructure:"default_weekday_hours" validate:"gte=0,lte=24"`
	DefaultWeekendHours float64 `mapstructure:"default_weekend_hours" validate:"gte=0,lte=24"`
	DefaultSubjects     int     `mapstructure:"default_subjects"      validate:"gte=1,lte=20"`
}

package logger_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/edulens/edulens-api/internal/config"
	"github.com/edulens/edulens-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter_Levels(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	testCases := []struct {
		level      string
		debugShown bool
		infoShown  bool
		warnShown  bool
	}{
		{"debug", true, true, true},
		{"INFO", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"nonsense", false, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf := &logger.TestLogBuffer{}
			l := logger.SetupWithWriter(config.ServerConfig{LogLevel: tc.level}, buf)
			require.NotNil(t, l)

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")

			logs := buf.String()
			assert.Equal(t, tc.debugShown, strings.Contains(logs, "debug message"))
			assert.Equal(t, tc.infoShown, strings.Contains(logs, "info message"))
			assert.Equal(t, tc.warnShown, strings.Contains(logs, "warn message"))

			// The configured logger becomes the default.
			assert.Equal(t, l, slog.Default())
		})
	}
}

func TestSetupWithWriter_WritesJSON(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info"}, buf)
	l.Info("exam year resolved", slog.Int("exam_year", 2027))

	logger.AssertLogField(t, buf, "msg", "exam year resolved")
	logger.AssertLogField(t, buf, "exam_year", float64(2027))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, ok := logger.ParseLevel("Warn")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)

	level, ok = logger.ParseLevel("fatal")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	defaultLogger := slog.Default()
	customLogger, _ := logger.NewTestLogger(t)

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//nolint:staticcheck // nil context is part of the contract under test
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.WithLogger(context.Background(), nil)
	})
}

package logger_test

import (
	"bytes"
	"io"
	"log"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/junction/logger"
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"TRACE", logger.LogLevelUnk},
		{"", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestLogLevelString(t *testing.T) {
	for _, tc := range []struct {
		input    logger.LogLevel
		expected string
	}{
		{logger.LogLevelDebug, "[DEBUG]"},
		{logger.LogLevelInfo, "[INFO]"},
		{logger.LogLevelWarn, "[WARN]"},
		{logger.LogLevelError, "[ERROR]"},
		{logger.LogLevelFatal, "[FATAL]"},
		{logger.LogLevelUnk, "[UNK]"},
	} {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.input.String())
		})
	}
}

func TestJunctionLoggerEmitsAtLevel(t *testing.T) {
	color.NoColor = true
	t.Setenv("SENTRY_DSN", "")

	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelWarn))

	// Act
	l.Debug("quiet", nil)
	l.Info("quiet", nil)

	// Assert
	require.Zero(t, b.Len())

	// Act
	l.Warn("louder", nil)

	// Assert
	require.Contains(t, b.String(), "[WARN]")
	require.Contains(t, b.String(), "logger_test.go")
	require.Contains(t, b.String(), "'louder'")

	// Arrange
	b.Reset()

	// Act
	l.Error("loudest", nil)

	// Assert
	require.Contains(t, b.String(), "[ERROR]")
	require.Contains(t, b.String(), "'loudest'")
}

func TestJunctionLoggerLogContext(t *testing.T) {
	color.NoColor = true
	t.Setenv("SENTRY_DSN", "")

	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelDebug))

	// Act
	l.Info("no context", nil)

	// Assert
	require.NotContains(t, b.String(), "log_context:")

	// Arrange
	b.Reset()

	// Act
	l.Info("with context", &logger.LogContext{Data: map[string]any{"rte": "trips"}})

	// Assert
	require.Contains(t, b.String(), "log_context:")
	require.Contains(t, b.String(), `{"data":{"rte":"trips"}}`)
}

func TestJunctionLoggerAddSkip(t *testing.T) {
	color.NoColor = true
	t.Setenv("SENTRY_DSN", "")

	// Arrange
	b := new(bytes.Buffer)
	l, ok := logger.New(logger.WithLogger(newTestLogger(b))).(*logger.JunctionLogger)
	require.True(t, ok)

	// Act
	skipped := l.AddSkip(1)

	// Assert
	require.Equal(t, 1, skipped.Skip())
	require.Zero(t, l.Skip())

	// Act - the extra frame attributes this log to the test harness, not this file.
	skipped.Info("hello", nil)

	// Assert
	require.NotContains(t, b.String(), "logger_test.go")
}

func TestJunctionLoggerLogLevel(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")

	// Arrange + Act
	l := logger.New(logger.WithLevel(logger.LogLevelError))

	// Assert
	require.Equal(t, logger.LogLevelError, l.LogLevel())
}

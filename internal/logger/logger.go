package logger

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Initialize sets up the global logger with the specified level and format
func Initialize(level, format string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Get returns the default logger
func Get() *slog.Logger {
	if defaultLogger == nil {
		// Initialize with default settings if not yet initialized
		Initialize("info", "text")
	}
	return defaultLogger
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// WithScreen returns a logger with the dashboard screen name attached
func WithScreen(screen string) *slog.Logger {
	return Get().With("screen", screen)
}

// BackendCall logs an outgoing backend request (debug log for external resources)
func BackendCall(method, url string, args ...any) {
	allArgs := append([]any{"method", method, "url", url}, args...)
	Get().Debug("→ Backend call", allArgs...)
}

// BackendResult logs the outcome of a backend request
func BackendResult(method, url string, err error, args ...any) {
	allArgs := append([]any{"method", method, "url", url}, args...)
	if err != nil {
		allArgs = append(allArgs, "error", err)
		Get().Error("← Backend call failed", allArgs...)
	} else {
		Get().Debug("← Backend call succeeded", allArgs...)
	}
}

// Package logger builds the slog loggers used across the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFromEnv returns a logger writing to w whose level comes from LOG_LEVEL.
// debug forces the debug level regardless of the environment.
func NewFromEnv(w io.Writer, debug bool) *slog.Logger {
	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	if debug {
		level = slog.LevelDebug
	}
	return New(w, level)
}

// ParseLevel maps a LOG_LEVEL value to a slog level; unknown values are warn
// so that a one-shot CLI stays quiet by default.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Scope tags records with the component that emitted them.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error wraps an error as a structured attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Package logging configures the process-wide slog logger.
//
// Logs go to stderr so that stdout carries only the status line printed by
// the commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Setup installs a text or JSON handler at the given level as the default
// slog logger and returns it.
//
// Level values: "debug", "info", "warn", "error" (default: "warn")
// Format values: "text", "json" (default: "text")
func Setup(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// WithRun returns the default logger tagged with a fresh run_id and the
// command being run.
func WithRun(command string) *slog.Logger {
	return slog.Default().With("run_id", uuid.NewString(), "command", command)
}

// WithFields returns logger with additional key/value pairs.
func WithFields(logger *slog.Logger, args ...any) *slog.Logger {
	if len(args)%2 != 0 {
		args = append(args, fmt.Sprintf("!MISSING_VALUE(%d)", len(args)))
	}
	return logger.With(args...)
}

// Package logging builds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a *slog.Logger writing to stderr and installs it with
// slog.SetDefault. Format "json" produces JSON output; anything else produces
// text output with source locations. Level is one of debug, info, warn, error
// (case-insensitive) and defaults to info.
func New(level, format string) *slog.Logger {
	logger := newLogger(os.Stderr, level, format)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	json := strings.EqualFold(format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: !json,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

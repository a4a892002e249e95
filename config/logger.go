package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a slog.Logger configured from GO_ENV and LOG_LEVEL, writing to stdout.
func NewLogger() *slog.Logger {
	return NewLoggerTo(os.Stdout, os.Getenv("GO_ENV"), os.Getenv("LOG_LEVEL"))
}

// NewLoggerTo builds the application logger for the given environment and level.
// Production uses the JSON handler; otherwise text. Unknown levels fall back to info.
func NewLoggerTo(w io.Writer, environment, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

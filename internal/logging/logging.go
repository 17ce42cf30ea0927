// Package logging configures colored structured logging with tint.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint-backed logger writing to w at the given level
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// Setup installs a stderr logger as the slog default. The level comes from
// LOG_LEVEL unless verbose forces debug.
func Setup(verbose bool) *slog.Logger {
	level := LevelFromEnv(os.Getenv)
	if verbose {
		level = slog.LevelDebug
	}
	logger := New(os.Stderr, level, false)
	slog.SetDefault(logger)
	return logger
}

// LevelFromEnv reads LOG_LEVEL through getenv
func LevelFromEnv(getenv func(string) string) slog.Level {
	switch strings.ToLower(getenv("LOG_LEVEL")) {
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

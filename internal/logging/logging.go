// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/theirongolddev/riskdash/internal/config"
)

// level is shared by every handler built here so it can change at runtime.
var level = new(slog.LevelVar)

// SetLevel changes the level of all loggers built by this package.
func SetLevel(name string) {
	level.Set(ParseLevel(name))
}

// Init installs a slog.Logger as the default and returns it along with a
// closer for any opened log file. w receives logs when no file is
// configured; pass io.Discard when stdout and stderr belong to the TUI.
func Init(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600) //nolint:gosec // user-configured log path
		if err != nil {
			return nil, closer, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := New(cfg, w)
	slog.SetDefault(logger)
	return logger, closer, nil
}

// New builds a logger without installing it.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	level.Set(ParseLevel(cfg.Level))
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel converts a level name to slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

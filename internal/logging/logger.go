// Package logging builds the process-wide slog.Logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/fsgraph/internal/config"
)

// New builds a slog.Logger configured according to the provided logging
// config, writing to w. A nil w writes to os.Stderr so that log records
// never interleave with rendered output on stdout.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
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

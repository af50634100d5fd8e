package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/ai4s-oj/lyrio/internal/config"
)

// NewLogger builds the process-wide slog logger from LogConfig and
// installs it as the slog default, so package-level slog calls and the
// service loggers share one handler.
//
// Format "json" emits machine-parseable records for deployed instances;
// any other value falls back to a text handler with source locations,
// which is what local runs want. Unrecognized levels mean info. Records
// go to stderr; stdout stays free for command output.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
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

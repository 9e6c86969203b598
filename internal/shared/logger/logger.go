package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// New builds the logger for env. Production logs JSON at info level; local
// and dev log text at debug level. Anything else logs text at info level.
func New(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, opts)
	case "local", "dev", "development":
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Setup configures the global slog logger based on environment
func Setup(env string) {
	logger := New(env, os.Stdout)
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env, "debug", logger.Enabled(context.Background(), slog.LevelDebug))
}

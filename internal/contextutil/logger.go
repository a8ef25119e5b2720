// Package contextutil carries request-scoped values through context.Context.
package contextutil

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// LoggerFromContext returns the logger stored by WithLogger, or slog.Default()
// when ctx carries none.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

package context

import (
	"context"
	"log/slog"
)

// WithLogger returns a context carrying a request-scoped logger, usually
// pre-populated with the request ID attribute.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger carried by ctx, or
// fallback when the context has none (startup paths and tests).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// Package ctxlog carries a slog.Logger through context.Context so the
// fetch and normalization stages can log without threading a logger
// argument through every call.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this context key from colliding with keys of
// other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx, falling back to the global
// default logger when none was installed.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Package context carries request-scoped values between the HTTP layer and
// the usecases: the request ID, a logger tagged with it, and the viewer.
package context

import (
	"context"
	"log/slog"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	keyScope ContextKey = "request_scope"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

type requestScope struct {
	requestID string
	logger    *slog.Logger
}

// WithRequestScope returns a context carrying the request ID and a logger
// that tags every record with it. A nil logger leaves only the ID.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	if logger != nil {
		logger = logger.With(slog.String("request_id", requestID))
	}

	return context.WithValue(ctx, keyScope, requestScope{requestID: requestID, logger: logger})
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	scope, _ := ctx.Value(keyScope).(requestScope)

	return scope.requestID
}

// LoggerFromContext returns the request-scoped logger, or nil outside a request.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	scope, _ := ctx.Value(keyScope).(requestScope)

	return scope.logger
}

// GetLoggerOrDefault returns the request-scoped logger when there is one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}

package graphql

import (
	"context"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyRequestID contextKey = "requestID"

// HeaderRequestID carries the caller's request id; echo's RequestID
// middleware sets the same header.
const HeaderRequestID = "X-Request-Id"

// WithRequestID attaches the request id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, id)
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// Package shared holds context keys and response helpers used by the API
// handlers and middleware.
package shared

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// Context keys used by the API middleware.
const (
	// TraceIDContextKey carries the per-request trace ID.
	TraceIDContextKey contextKey = "trace_id"

	// UserIDContextKey carries the authenticated user's UUID.
	UserIDContextKey contextKey = "user_id"

	// UserRoleContextKey carries the authenticated user's role.
	UserRoleContextKey contextKey = "user_role"
)

// WithUserID returns a new context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// GetUserID returns the authenticated user's ID stored in the context.
// The second return value reports whether an ID was present.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// WithUserRole returns a new context carrying the authenticated user's role.
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, UserRoleContextKey, role)
}

// GetUserRole returns the authenticated user's role stored in the context,
// or an empty string if none is present.
func GetUserRole(ctx context.Context) string {
	if role, ok := ctx.Value(UserRoleContextKey).(string); ok {
		return role
	}
	return ""
}

// WithTraceID returns a new context carrying the given trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDContextKey, traceID)
}

// GetTraceID returns the trace ID stored in the context, or an empty
// string if none is present.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

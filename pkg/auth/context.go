// Package auth resolves the caller's identity from request headers before any
// handler logic runs.
package auth

import (
	"context"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyUserID is the context key for the authenticated user's ID
	ContextKeyUserID contextKey = "user_id"
	// ContextKeySessionID is the context key for the resolved session ID
	ContextKeySessionID contextKey = "session_id"
)

// WithUserID adds the user ID to the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// UserIDFromContext retrieves the user ID from the context
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(string)
	return id, ok && id != ""
}

// WithSessionID adds the session ID to the context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// SessionIDFromContext retrieves the session ID from the context
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeySessionID).(string)
	return id, ok && id != ""
}

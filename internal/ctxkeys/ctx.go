package ctxkeys

import (
	"context"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	SessionKey   contextKey = "session"
	RequestIDKey contextKey = "request_id"
)

// Session is the authenticated principal resolved from the session cookie.
// Ownership checks in repositories take the UserID from here explicitly.
type Session struct {
	UserID   int64
	Username string
}

func SessionFrom(ctx context.Context) *Session {
	sess, _ := ctx.Value(SessionKey).(*Session)
	return sess
}

func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

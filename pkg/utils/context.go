package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	RoleKey      contextKey = "role"
	SessionIDKey contextKey = "session_id"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetSessionIDFromContext returns the session id the auth middleware
// extracted from the token's jti claim.
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(SessionIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	str, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func SetSessionContext(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID.String())
}

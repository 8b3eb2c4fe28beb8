package internal

import (
	"context"
)

type ctxKey string

const (
	contextUserIDKey   ctxKey = "userID"
	contextUserNameKey ctxKey = "userName"
	contextUserRoleKey ctxKey = "userRole"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if userID, ok := ctx.Value(contextUserIDKey).(string); ok {
		return userID
	}
	return ""
}

func UserNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if name, ok := ctx.Value(contextUserNameKey).(string); ok {
		return name
	}
	return ""
}

func UserRoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if role, ok := ctx.Value(contextUserRoleKey).(string); ok {
		return role
	}
	return ""
}

func ContextWithUser(ctx context.Context, userID, name, role string) context.Context {
	ctx = context.WithValue(ctx, contextUserIDKey, userID)
	ctx = context.WithValue(ctx, contextUserNameKey, name)
	return context.WithValue(ctx, contextUserRoleKey, role)
}

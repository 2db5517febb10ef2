package utils

import (
	"context"

	"telehealth-portal/internal/data/entity"

	"github.com/google/uuid"
)

type contextKey string

const (
	SessionKey contextKey = "session"
	TokenKey   contextKey = "token"
)

// SetSessionContext stores the authenticated session for downstream handlers
func SetSessionContext(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return session.UserID, true
}

func GetRoleFromContext(ctx context.Context) (entity.UserRole, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return "", false
	}
	return session.Role, true
}

// GetTokenFromContext returns the raw cookie token, valid or not
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok && token != ""
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

package middleware

import (
	"context"
	"errors"
	"net/http"

	"telehealth-portal/internal/data/entity"
	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/utils"

	"go.uber.org/zap"
)

// SessionResolver looks up the live session behind a cookie token.
type SessionResolver interface {
	Current(ctx context.Context, token string) (*entity.Session, error)
}

// Session resolves the session cookie on every request. The raw token is
// always put in the context so logout and login can replace it; the
// session itself only when it is still valid. Requests without a valid
// session continue anonymously.
func Session(sessions SessionResolver, cfg utils.SessionConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := utils.SessionTokenFromRequest(r, cfg.CookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetTokenContext(r.Context(), token)

			session, err := sessions.Current(ctx, token)
			switch {
			case errors.Is(err, usecase.ErrUnauthenticated):
				logger.Debug("Ignoring invalid or expired session", zap.String("path", r.URL.Path))
			case err != nil:
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Server error")
				return
			default:
				ctx = utils.SetSessionContext(ctx, session)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects anonymous requests with 401.
func RequireSession(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
				logger.Warn("Unauthenticated access attempt",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method))
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

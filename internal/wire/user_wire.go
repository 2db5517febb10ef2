package wire

import (
	"telehealth-portal/internal/adaptor"
	"telehealth-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, log *zap.Logger) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(log))

		r.Get("/api/user", userHandler.GetCurrentUser)
		r.Get("/api/user/dashboard", userHandler.GetDashboard)
	})
}

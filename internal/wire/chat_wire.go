package wire

import (
	"telehealth-portal/internal/adaptor"
	"telehealth-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireChat(r chi.Router, chatHandler *adaptor.ChatHandler, log *zap.Logger) {
	r.With(middleware.RequireSession(log)).Post("/api/chat", chatHandler.Reply)
}

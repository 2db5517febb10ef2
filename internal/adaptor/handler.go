package adaptor

import (
	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Dashboard *DashboardHandler
	Chat      *ChatHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, config.Session, log),
		User:      NewUserHandler(service.User, service.Dashboard, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
		Chat:      NewChatHandler(service.Chat, log),
	}
}

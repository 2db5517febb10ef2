package usecase

import (
	"telehealth-portal/internal/data/repository"
	"telehealth-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Session   SessionService
	User      UserService
	Dashboard DashboardService
	Chat      ChatService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	session := NewSessionService(repo.Session, config.Session, log)

	return &Service{
		Auth:      NewAuthService(repo.User, session, config.Security, log),
		Session:   session,
		User:      NewUserService(repo.User, log),
		Dashboard: NewDashboardService(log),
		Chat:      NewChatService(log),
	}
}

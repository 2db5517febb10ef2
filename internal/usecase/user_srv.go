package usecase

import (
	"context"
	"fmt"

	"telehealth-portal/internal/data/repository"
	"telehealth-portal/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetCurrent(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

// GetCurrent resolves the user behind a session. A session whose user no
// longer exists is treated as unauthenticated.
func (us *userService) GetCurrent(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("%w: find user: %v", ErrStorage, err)
	}
	if user == nil {
		us.log.Warn("Session references missing user", zap.String("user_id", userID.String()))
		return nil, ErrUnauthenticated
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"telehealth-portal/internal/data/entity"
	"telehealth-portal/internal/data/repository"
	"telehealth-portal/internal/dto/request"
	"telehealth-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService is the session manager. Current is read-only; Establish
// and Destroy are the only mutators.
type SessionService interface {
	Establish(ctx context.Context, user *entity.User, meta request.ClientMeta) (*entity.Session, error)
	Current(ctx context.Context, token string) (*entity.Session, error)
	Destroy(ctx context.Context, token string) error
	RevokeUser(ctx context.Context, userID uuid.UUID) error
	Prune(ctx context.Context) (int64, error)
}

type sessionService struct {
	repo   repository.SessionRepository
	config utils.SessionConfig
	now    func() time.Time
	log    *zap.Logger
}

func NewSessionService(repo repository.SessionRepository, config utils.SessionConfig, log *zap.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		config: config,
		now:    time.Now,
		log:    log,
	}
}

// Establish replaces whatever session the client already holds with a new one.
func (s *sessionService) Establish(ctx context.Context, user *entity.User, meta request.ClientMeta) (*entity.Session, error) {
	if meta.PriorToken != "" {
		if err := s.Destroy(ctx, meta.PriorToken); err != nil {
			return nil, err
		}
	}

	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Token:     uuid.New(),
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		UserAgent: optional(meta.UserAgent),
		IPAddress: optional(meta.IPAddress),
		ExpiresAt: now.Add(s.config.Expiry()),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: %v", ErrSession, err)
	}

	s.log.Debug("Session established",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", session.ExpiresAt))

	return session, nil
}

func (s *sessionService) Current(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	session, err := s.repo.FindValidSession(ctx, tokenUUID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if session == nil {
		return nil, ErrUnauthenticated
	}

	return session, nil
}

// Destroy revokes the session behind token. Unknown or malformed tokens are
// already as good as destroyed.
func (s *sessionService) Destroy(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	err = s.repo.Revoke(ctx, tokenUUID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSession, err)
	}

	return nil
}

func (s *sessionService) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.RevokeAllUserSessions(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrSession, err)
	}
	s.log.Info("All sessions revoked", zap.String("user_id", userID.String()))
	return nil
}

func (s *sessionService) Prune(ctx context.Context) (int64, error) {
	n, err := s.repo.CleanExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSession, err)
	}
	s.log.Info("Expired sessions pruned", zap.Int64("count", n))
	return n, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"telehealth-portal/internal/data/entity"
	"telehealth-portal/internal/data/repository"
	"telehealth-portal/internal/dto/request"
	"telehealth-portal/internal/dto/response"
	"telehealth-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgAllFieldsRequired   = "All fields are required"
	msgInvalidRole         = "Invalid role"
	msgCredentialsRequired = "Email and password required"
	msgInvalidInput        = "Invalid input"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest, meta request.ClientMeta) (*response.AuthResult, error)
	Login(ctx context.Context, req *request.LoginRequest, meta request.ClientMeta) (*response.AuthResult, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	sessions SessionService
	security utils.SecurityConfig
	log      *zap.Logger

	// hashed once so unknown emails cost the same bcrypt work as wrong passwords
	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(
	users repository.UserRepository,
	sessions SessionService,
	security utils.SecurityConfig,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		security: security,
		log:      log,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest, meta request.ClientMeta) (*response.AuthResult, error) {
	// 1. Validate input
	if err := validateSignup(req); err != nil {
		s.log.Warn("Signup validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Check email is free
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: check email: %v", ErrStorage, err)
	}
	if exists {
		return nil, ErrConflict
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password, s.security.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &ValidationError{
			Message: msgInvalidInput,
			Fields:  utils.FieldErrors{"password": "Maximum length is 72 bytes"},
		}
	}
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Persist
	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// lost the race against a concurrent signup for the same email
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrConflict
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: create user: %v", ErrStorage, err)
	}

	// 5. Log the new user in
	session, err := s.sessions.Establish(ctx, user, meta)
	if err != nil {
		s.log.Warn("Failed to create session after signup",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// the account exists; the client can still log in
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return response.AuthToResult(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta request.ClientMeta) (*response.AuthResult, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Message: msgCredentialsRequired, Fields: errs}
	}

	// 2. Find user
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: find user: %v", ErrStorage, err)
	}

	// 3. Unknown email and wrong password are indistinguishable to the caller
	if user == nil {
		utils.CheckPasswordHash(req.Password, s.dummy())
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Create session
	session, err := s.sessions.Establish(ctx, user, meta)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return response.AuthToResult(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessions.Destroy(ctx, token); err != nil {
		return err
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := utils.HashPassword(uuid.NewString(), s.security.BcryptCost)
		if err != nil {
			s.log.Warn("Failed to prepare dummy hash", zap.Error(err))
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// validateSignup reports missing fields before an invalid role, matching
// the order clients rely on for their error messages.
func validateSignup(req *request.SignupRequest) error {
	errs := utils.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}

	switch {
	case errs.Missing():
		return &ValidationError{Message: msgAllFieldsRequired, Fields: errs}
	case errs["role"] != "":
		return &ValidationError{Message: msgInvalidRole, Fields: errs}
	default:
		return &ValidationError{Message: msgInvalidInput, Fields: errs}
	}
}

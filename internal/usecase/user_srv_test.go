package usecase

import (
	"context"
	"testing"
	"time"

	"telehealth-portal/internal/data/entity"
	"telehealth-portal/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_GetCurrent(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository(zap.NewNop())
	svc := NewUserService(users, zap.NewNop())

	user := &entity.User{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Username:     "dave",
		Email:        "d@x.com",
		PasswordHash: "hash",
		Role:         entity.RoleDoctor,
	}
	require.NoError(t, users.Create(ctx, user))

	got, err := svc.GetCurrent(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), got.ID)
	assert.Equal(t, "dave", got.Username)
	assert.Equal(t, entity.RoleDoctor, got.Role)

	_, err = svc.GetCurrent(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUserService_GetCurrentStorageError(t *testing.T) {
	users := &stubUserRepo{
		UserRepository: repository.NewMemoryUserRepository(zap.NewNop()),
		findErr:        errBoom,
	}
	svc := NewUserService(users, zap.NewNop())

	_, err := svc.GetCurrent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrStorage)
}

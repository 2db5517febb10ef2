package repository

import (
	"context"

	"telehealth-portal/internal/data/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// memoryUserRepository keeps users in process memory. The email index is
// claimed with cache.Add, which fails atomically when the key exists, so the
// uniqueness guarantee matches the postgres UNIQUE constraint.
type memoryUserRepository struct {
	byEmail *cache.Cache
	byID    *cache.Cache
	log     *zap.Logger
}

func NewMemoryUserRepository(log *zap.Logger) UserRepository {
	return &memoryUserRepository{
		byEmail: cache.New(cache.NoExpiration, 0),
		byID:    cache.New(cache.NoExpiration, 0),
		log:     log.With(zap.String("repository", "user"), zap.String("driver", "memory")),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	stored := *user
	if err := r.byEmail.Add(user.Email, &stored, cache.NoExpiration); err != nil {
		r.log.Warn("Duplicate email on insert", zap.String("email", user.Email))
		return ErrDuplicateEmail
	}
	r.byID.Set(user.ID.String(), &stored, cache.NoExpiration)
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return lookupUser(r.byID, id.String()), nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return lookupUser(r.byEmail, email), nil
}

func (r *memoryUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, found := r.byEmail.Get(email)
	return found, nil
}

func lookupUser(c *cache.Cache, key string) *entity.User {
	v, found := c.Get(key)
	if !found {
		return nil
	}
	user := *v.(*entity.User)
	return &user
}

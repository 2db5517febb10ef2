package repository

import (
	"context"
	"time"

	"telehealth-portal/internal/data/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// memorySessionRepository keeps sessions in a TTL cache keyed by token.
// Entries expire with the session; a cleanupInterval of 0 disables the
// background janitor and leaves eviction to CleanExpiredSessions.
type memorySessionRepository struct {
	sessions *cache.Cache
	now      func() time.Time
	log      *zap.Logger
}

func NewMemorySessionRepository(cleanupInterval time.Duration, log *zap.Logger) SessionRepository {
	return &memorySessionRepository{
		sessions: cache.New(cache.NoExpiration, cleanupInterval),
		now:      time.Now,
		log:      log.With(zap.String("repository", "session"), zap.String("driver", "memory")),
	}
}

func (r *memorySessionRepository) Create(_ context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		ttl = time.Nanosecond
	}

	stored := *session
	r.sessions.Set(session.Token.String(), &stored, ttl)
	return nil
}

func (r *memorySessionRepository) FindValidSession(_ context.Context, token uuid.UUID) (*entity.Session, error) {
	v, found := r.sessions.Get(token.String())
	if !found {
		return nil, nil
	}

	session := *v.(*entity.Session)
	if !session.Active(r.now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *memorySessionRepository) Revoke(_ context.Context, token uuid.UUID) error {
	key := token.String()
	if _, found := r.sessions.Get(key); !found {
		return ErrSessionNotFound
	}
	r.sessions.Delete(key)
	return nil
}

func (r *memorySessionRepository) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	for key, item := range r.sessions.Items() {
		if s, ok := item.Object.(*entity.Session); ok && s.UserID == userID {
			r.sessions.Delete(key)
		}
	}
	return nil
}

func (r *memorySessionRepository) CleanExpiredSessions(_ context.Context) (int64, error) {
	before := r.sessions.ItemCount()
	r.sessions.DeleteExpired()
	removed := int64(before - r.sessions.ItemCount())

	r.log.Debug("Expired sessions evicted", zap.Int64("count", removed))
	return removed, nil
}

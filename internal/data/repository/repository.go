package repository

import (
	"time"

	"telehealth-portal/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
}

// NewRepository wires the postgres-backed stores onto a shared pool.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}

// NewMemoryRepository wires in-process stores. Data does not survive a restart.
func NewMemoryRepository(sessionCleanup time.Duration, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewMemoryUserRepository(log),
		Session: NewMemorySessionRepository(sessionCleanup, log),
	}
}

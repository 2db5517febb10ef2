package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"telehealth-portal/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sessionColumns = []string{
	"id", "token", "user_id", "username", "email", "role", "user_agent", "ip_address",
	"expires_at", "revoked_at", "created_at",
}

func newTestSession(expiresIn time.Duration) *entity.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		Token:      uuid.New(),
		UserID:     uuid.New(),
		Username:   "alice",
		Email:      "a@x.com",
		Role:       entity.RolePatient,
		ExpiresAt:  now.Add(expiresIn),
	}
}

func TestSessionRepository_Create(t *testing.T) {
	session := newTestSession(time.Hour)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO sessions`).
		WithArgs(session.ID, session.Token, session.UserID, "alice", "a@x.com", entity.RolePatient,
			session.UserAgent, session.IPAddress, session.ExpiresAt, session.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO sessions`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	repo := NewSessionRepository(mock, zap.NewNop())
	require.NoError(t, repo.Create(context.Background(), session))

	err = repo.Create(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindValidSession(t *testing.T) {
	session := newTestSession(time.Hour)
	agent := "curl/8"

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		check     func(t *testing.T, got *entity.Session)
		wantErr   bool
	}{
		{
			name: "valid session",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(sessionColumns).AddRow(
					session.ID, session.Token, session.UserID, "alice", "a@x.com", "patient",
					&agent, nil, session.ExpiresAt, nil, session.CreatedAt,
				)
				mock.ExpectQuery(`FROM sessions\s+WHERE token = \$1\s+AND revoked_at IS NULL`).
					WithArgs(session.Token).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, got *entity.Session) {
				require.NotNil(t, got)
				assert.Equal(t, session.UserID, got.UserID)
				assert.Equal(t, entity.RolePatient, got.Role)
				require.NotNil(t, got.UserAgent)
				assert.Equal(t, "curl/8", *got.UserAgent)
				assert.Nil(t, got.IPAddress)
				assert.Nil(t, got.RevokedAt)
			},
		},
		{
			name: "unknown, revoked or expired yields nil",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM sessions`).
					WithArgs(session.Token).
					WillReturnRows(pgxmock.NewRows(sessionColumns))
			},
			check: func(t *testing.T, got *entity.Session) {
				assert.Nil(t, got)
			},
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM sessions`).
					WithArgs(session.Token).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewSessionRepository(mock, zap.NewNop())
			got, err := repo.FindValidSession(context.Background(), session.Token)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				tt.check(t, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_Revoke(t *testing.T) {
	token := uuid.New()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
		wantAny   bool
	}{
		{
			name: "revoked",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE sessions\s+SET revoked_at = NOW\(\)`).
					WithArgs(token).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "nothing to revoke",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE sessions`).
					WithArgs(token).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: ErrSessionNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE sessions`).
					WithArgs(token).
					WillReturnError(errors.New("read-only transaction"))
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewSessionRepository(mock, zap.NewNop())
			err = repo.Revoke(context.Background(), token)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAny:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrSessionNotFound)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_RevokeAllUserSessions(t *testing.T) {
	userID := uuid.New()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE sessions\s+SET revoked_at = NOW\(\)\s+WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	repo := NewSessionRepository(mock, zap.NewNop())
	require.NoError(t, repo.RevokeAllUserSessions(context.Background(), userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CleanExpiredSessions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM sessions`).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	repo := NewSessionRepository(mock, zap.NewNop())
	n, err := repo.CleanExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

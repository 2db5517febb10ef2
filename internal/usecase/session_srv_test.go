package usecase

import (
	"context"
	"testing"
	"time"

	"telehealth-portal/internal/data/entity"
	"telehealth-portal/internal/data/repository"
	"telehealth-portal/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testUser(role entity.UserRole) *entity.User {
	return &entity.User{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Username:   "bob",
		Email:      "b@x.com",
		Role:       role,
	}
}

func TestSessionService_EstablishAndCurrent(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(nil, nil)
	user := testUser(entity.RoleDoctor)

	session, err := deps.session.Establish(ctx, user, request.ClientMeta{IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, entity.RoleDoctor, session.Role)
	assert.Nil(t, session.UserAgent)
	require.NotNil(t, session.IPAddress)
	assert.Equal(t, "10.0.0.1", *session.IPAddress)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)

	current, err := deps.session.Current(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Equal(t, session.Token, current.Token)
	assert.Equal(t, "bob", current.Username)
}

func TestSessionService_CurrentRejectsBadTokens(t *testing.T) {
	deps := newTestDeps(nil, nil)

	for _, token := range []string{"", "not-a-uuid", uuid.NewString()} {
		_, err := deps.session.Current(context.Background(), token)
		assert.ErrorIs(t, err, ErrUnauthenticated, "token %q", token)
	}
}

func TestSessionService_CurrentIgnoresExpired(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(nil, nil)
	svc := deps.session.(*sessionService)
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	session, err := svc.Establish(ctx, testUser(entity.RolePatient), request.ClientMeta{})
	require.NoError(t, err)

	_, err = svc.Current(ctx, session.Token.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionService_CurrentStorageError(t *testing.T) {
	sessions := &stubSessionRepo{
		SessionRepository: repository.NewMemorySessionRepository(0, zap.NewNop()),
		findErr:           errBoom,
	}
	deps := newTestDeps(nil, sessions)

	_, err := deps.session.Current(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestSessionService_EstablishStoreFailure(t *testing.T) {
	sessions := &stubSessionRepo{
		SessionRepository: repository.NewMemorySessionRepository(0, zap.NewNop()),
		createErr:         errBoom,
	}
	deps := newTestDeps(nil, sessions)

	_, err := deps.session.Establish(context.Background(), testUser(entity.RolePatient), request.ClientMeta{})
	assert.ErrorIs(t, err, ErrSession)
}

func TestSessionService_Destroy(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(nil, nil)

	session, err := deps.session.Establish(ctx, testUser(entity.RolePatient), request.ClientMeta{})
	require.NoError(t, err)

	require.NoError(t, deps.session.Destroy(ctx, session.Token.String()))
	_, err = deps.session.Current(ctx, session.Token.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.NoError(t, deps.session.Destroy(ctx, session.Token.String()))
	assert.NoError(t, deps.session.Destroy(ctx, "garbage"))
}

func TestSessionService_RevokeUser(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(nil, nil)
	user := testUser(entity.RoleVolunteer)
	other := testUser(entity.RolePatient)

	first, err := deps.session.Establish(ctx, user, request.ClientMeta{})
	require.NoError(t, err)
	second, err := deps.session.Establish(ctx, user, request.ClientMeta{})
	require.NoError(t, err)
	kept, err := deps.session.Establish(ctx, other, request.ClientMeta{})
	require.NoError(t, err)

	require.NoError(t, deps.session.RevokeUser(ctx, user.ID))

	for _, s := range []*entity.Session{first, second} {
		_, err := deps.session.Current(ctx, s.Token.String())
		assert.ErrorIs(t, err, ErrUnauthenticated)
	}
	_, err = deps.session.Current(ctx, kept.Token.String())
	assert.NoError(t, err)
}

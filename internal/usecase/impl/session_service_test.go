package impl

import (
	"context"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/infra/auth"
	"authgate/internal/infra/persistence/memory"
	mockRepo "authgate/internal/mocks/repository"
	mockSvc "authgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sessionTestNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSessionConfig(ttl time.Duration) *config.Config {
	return &config.Config{Session: &config.SessionConfig{TTL: ttl}}
}

// newStoreBackedSessionService runs the service on the in-memory store with a fixed clock.
func newStoreBackedSessionService(t *testing.T, ttl time.Duration) (*sessionService, *memory.Store, *recordingMetrics) {
	t.Helper()

	store := memory.NewStore()
	metrics := &recordingMetrics{}
	srv := newSessionService(SessionServiceParams{
		TxManager:   memory.NewTransactionManager(store),
		SessionRepo: memory.NewSessionRepository(store),
		Tokens:      auth.NewSessionTokenGenerator(),
		Metrics:     metrics,
		Config:      newTestSessionConfig(ttl),
		Logger:      newDiscardLogger(),
	})
	srv.now = func() time.Time { return sessionTestNow }

	return srv, store, metrics
}

func TestSessionService_StartAndResolve(t *testing.T) {
	srv, _, _ := newStoreBackedSessionService(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	token, session, err := srv.Start(ctx, userID, "curl/8", "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, token, session.TokenHash)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, sessionTestNow.Add(time.Hour), session.ExpiresAt)

	srv.now = func() time.Time { return sessionTestNow.Add(10 * time.Minute) }
	resolved, err := srv.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resolved.ID)
	assert.Equal(t, userID, resolved.UserID)
	assert.Equal(t, sessionTestNow.Add(10*time.Minute), resolved.LastSeenAt)
}

func TestSessionService_Resolve_Unauthenticated(t *testing.T) {
	srv, _, _ := newStoreBackedSessionService(t, time.Hour)
	ctx := context.Background()

	_, err := srv.Resolve(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = srv.Resolve(ctx, "deadbeef")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_Resolve_ExpiredSessionIsRemoved(t *testing.T) {
	srv, store, _ := newStoreBackedSessionService(t, time.Minute)
	ctx := context.Background()

	token, session, err := srv.Start(ctx, uuid.New(), "", "")
	require.NoError(t, err)

	srv.now = func() time.Time { return sessionTestNow.Add(time.Minute) }
	_, err = srv.Resolve(ctx, token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = memory.NewSessionRepository(store).FindByTokenHash(ctx, session.TokenHash)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionService_End_IsIdempotent(t *testing.T) {
	srv, _, _ := newStoreBackedSessionService(t, time.Hour)
	ctx := context.Background()

	token, _, err := srv.Start(ctx, uuid.New(), "", "")
	require.NoError(t, err)

	require.NoError(t, srv.End(ctx, token))
	require.NoError(t, srv.End(ctx, token))
	require.NoError(t, srv.End(ctx, ""))

	_, err = srv.Resolve(ctx, token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_Cleanup(t *testing.T) {
	srv, _, metrics := newStoreBackedSessionService(t, time.Minute)
	ctx := context.Background()

	_, _, err := srv.Start(ctx, uuid.New(), "", "")
	require.NoError(t, err)
	srv.now = func() time.Time { return sessionTestNow.Add(30 * time.Second) }
	live, _, err := srv.Start(ctx, uuid.New(), "", "")
	require.NoError(t, err)

	srv.now = func() time.Time { return sessionTestNow.Add(time.Minute) }
	removed, err := srv.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Equal(t, int64(1), metrics.swept)

	_, err = srv.Resolve(ctx, live)
	assert.NoError(t, err)
}

func TestSessionService_DefaultTTL(t *testing.T) {
	srv := newSessionService(SessionServiceParams{Logger: newDiscardLogger()})
	assert.Equal(t, defaultSessionTTL, srv.ttl)
}

func TestSessionService_Start_TokenFailure(t *testing.T) {
	tokens := mockSvc.NewMockSessionTokenGenerator(t)
	srv := newSessionService(SessionServiceParams{
		SessionRepo: mockRepo.NewMockSessionRepository(t),
		Tokens:      tokens,
		Logger:      newDiscardLogger(),
	})

	tokens.EXPECT().Generate().Return("", "", errors.New("no entropy"))

	_, _, err := srv.Start(context.Background(), uuid.New(), "", "")
	assert.ErrorContains(t, err, "no entropy")
}

func TestSessionService_Resolve_TouchFailureIsIgnored(t *testing.T) {
	tokens := mockSvc.NewMockSessionTokenGenerator(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	srv := newSessionService(SessionServiceParams{
		SessionRepo: sessionRepo,
		Tokens:      tokens,
		Logger:      newDiscardLogger(),
	})
	srv.now = func() time.Time { return sessionTestNow }
	ctx := context.Background()

	stored := &entity.Session{ID: uuid.New(), UserID: uuid.New(), TokenHash: "digest", ExpiresAt: sessionTestNow.Add(time.Hour)}
	tokens.EXPECT().Hash("token").Return("digest")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "digest").Return(stored, nil)
	sessionRepo.EXPECT().UpdateLastSeen(ctx, stored.ID, sessionTestNow).Return(errors.New("read-only replica"))

	session, err := srv.Resolve(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, session.UserID)
}

func TestSessionService_Resolve_StoreError(t *testing.T) {
	tokens := mockSvc.NewMockSessionTokenGenerator(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	srv := newSessionService(SessionServiceParams{
		SessionRepo: sessionRepo,
		Tokens:      tokens,
		Logger:      newDiscardLogger(),
	})

	tokens.EXPECT().Hash("token").Return("digest")
	sessionRepo.EXPECT().FindByTokenHash(mock.Anything, "digest").Return(nil, errors.New("connection reset"))

	_, err := srv.Resolve(context.Background(), "token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_End_UsesTransaction(t *testing.T) {
	tokens := mockSvc.NewMockSessionTokenGenerator(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	txSessionRepo := mockRepo.NewMockSessionRepository(t)
	srv := newSessionService(SessionServiceParams{
		TxManager:   txManager,
		SessionRepo: mockRepo.NewMockSessionRepository(t),
		Tokens:      tokens,
		Logger:      newDiscardLogger(),
	})
	expectTransaction(t, txManager, nil, txSessionRepo)
	ctx := context.Background()

	id := uuid.New()
	tokens.EXPECT().Hash("token").Return("digest")
	txSessionRepo.EXPECT().FindByTokenHash(ctx, "digest").Return(&entity.Session{ID: id}, nil)
	txSessionRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, srv.End(ctx, "token"))
}

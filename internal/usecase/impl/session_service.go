package impl

import (
	"context"
	"log/slog"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 24 * time.Hour

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager   repository.TransactionManager
	sessionRepo repository.SessionRepository
	tokens      service.SessionTokenGenerator
	metrics     service.AuthMetrics
	ttl         time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SessionRepo repository.SessionRepository
	Tokens      service.SessionTokenGenerator
	Metrics     service.AuthMetrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return newSessionService(params)
}

func newSessionService(params SessionServiceParams) *sessionService {
	ttl := defaultSessionTTL
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	metrics := params.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &sessionService{
		txManager:   params.TxManager,
		sessionRepo: params.SessionRepo,
		tokens:      params.Tokens,
		metrics:     metrics,
		ttl:         ttl,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start persists a new session. Only the token digest is stored; the raw token
// is returned once for the cookie.
func (srv *sessionService) Start(ctx context.Context, userID uuid.UUID, userAgent, ipAddress string) (string, *entity.Session, error) {
	token, tokenHash, err := srv.tokens.Generate()
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to generate session token")
	}

	now := srv.now().UTC()
	session := &entity.Session{
		UserID:     userID,
		TokenHash:  tokenHash,
		UserAgent:  userAgent,
		IPAddress:  ipAddress,
		ExpiresAt:  now.Add(srv.ttl),
		CreatedAt:  now,
		LastSeenAt: now,
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("user_id", userID), slog.Any("error", err))

		return "", nil, errors.Wrap(err, "failed to create session")
	}
	srv.log(ctx).Debug("Session started", slog.Any("user_id", userID), slog.Any("session_id", session.ID))

	return token, session, nil
}

// Resolve maps a cookie token to its live session.
func (srv *sessionService) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("no session token")
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokens.Hash(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("unknown session token")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	now := srv.now().UTC()
	if session.IsExpiredAt(now) {
		if err := srv.sessionRepo.Delete(ctx, session.ID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("session_id", session.ID), slog.Any("error", err))
		}

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("session expired")
	}

	if err := srv.sessionRepo.UpdateLastSeen(ctx, session.ID, now); err != nil {
		srv.log(ctx).Warn("Failed to touch session", slog.Any("session_id", session.ID), slog.Any("error", err))
	} else {
		session.LastSeenAt = now
	}

	return session, nil
}

// End deletes the session behind a token. Repeated signouts are not errors.
func (srv *sessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	tokenHash := srv.tokens.Hash(token)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindByTokenHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session")
		}

		if err := sessionRepo.Delete(ctx, session.ID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to delete session")
		}
		srv.log(ctx).Debug("Session ended", slog.Any("session_id", session.ID))

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to end session", slog.Any("error", err))

		return errors.Wrap(err, "failed to end session")
	}

	return nil
}

// Cleanup removes all sessions expired at the current time.
func (srv *sessionService) Cleanup(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx, srv.now().UTC())
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}
	srv.metrics.RecordSessionsSwept(removed)

	if removed > 0 {
		srv.log(ctx).Info("Cleaned up expired sessions", slog.Int64("removed", removed))
	}

	return removed, nil
}

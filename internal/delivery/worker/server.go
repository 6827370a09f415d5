// Package worker runs background jobs alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"authgate/config"
	"authgate/internal/delivery"
	"authgate/internal/domain/lifecycle"
	"authgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sessionSweeper struct {
	sessions usecase.SessionUsecase
	interval time.Duration
	logger   *slog.Logger

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// ServerParams holds dependencies for the session sweeper
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// NewServer creates the delivery that periodically removes expired sessions.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Session == nil || params.Cfg.Session.CleanupInterval <= 0 {
		return nil, errors.New("session cleanup interval must be positive")
	}

	srv := newSessionSweeper(params.Sessions, params.Cfg.Session.CleanupInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newSessionSweeper(sessions usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *sessionSweeper {
	return &sessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Serve sweeps once per interval until ctx is cancelled or the sweeper is stopped.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("session sweeper already running")
	}
	defer close(s.doneCh)

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := s.sessions.Cleanup(sweepCtx); err != nil {
		s.logger.Error("Session sweep failed", slog.Any("error", err))
	}
}

// stop signals Serve to return and waits for the in-flight sweep, bounded by ctx.
func (s *sessionSweeper) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	if !s.started.Load() {
		return nil
	}

	s.logger.Info("Shutting down session sweeper")

	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "session sweeper did not stop in time")
	}
}

package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "authgate/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionSweeper_SweepsUntilStopped(t *testing.T) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	swept := make(chan struct{}, 1)
	sessions.EXPECT().Cleanup(mock.Anything).RunAndReturn(func(context.Context) (int64, error) {
		select {
		case swept <- struct{}{}:
		default:
		}

		return 2, nil
	})

	sweeper := newSessionSweeper(sessions, 5*time.Millisecond, newDiscardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- sweeper.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("no sweep happened")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.stop(stopCtx))
	require.NoError(t, <-errCh)

	// A second stop is a no-op.
	require.NoError(t, sweeper.stop(stopCtx))
}

func TestSessionSweeper_ContinuesAfterFailure(t *testing.T) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	calls := make(chan struct{}, 8)
	sessions.EXPECT().Cleanup(mock.Anything).RunAndReturn(func(context.Context) (int64, error) {
		select {
		case calls <- struct{}{}:
		default:
		}

		return 0, errors.New("db down")
	})

	sweeper := newSessionSweeper(sessions, 5*time.Millisecond, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- sweeper.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("sweeper stopped after a failed sweep")
		}
	}

	cancel()
	require.NoError(t, <-errCh)
}

func TestSessionSweeper_StopBeforeServe(t *testing.T) {
	sweeper := newSessionSweeper(mockUsecase.NewMockSessionUsecase(t), time.Minute, newDiscardLogger())

	assert.NoError(t, sweeper.stop(context.Background()))
}

func TestSessionSweeper_ServeTwice(t *testing.T) {
	sweeper := newSessionSweeper(mockUsecase.NewMockSessionUsecase(t), time.Minute, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- sweeper.Serve(ctx) }()

	require.Eventually(t, sweeper.started.Load, time.Second, time.Millisecond)
	assert.Error(t, sweeper.Serve(ctx))

	cancel()
	require.NoError(t, <-errCh)
}

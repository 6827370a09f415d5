package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"authgate/internal/domain/repository"
	mockRepo "authgate/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against a factory serving the given repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if userRepo != nil {
				factory.EXPECT().UserRepo().Return(userRepo).Maybe()
			}
			if sessionRepo != nil {
				factory.EXPECT().SessionRepo().Return(sessionRepo).Maybe()
			}

			return fn(factory)
		})
}

// recordingMetrics captures every outcome handed to it.
type recordingMetrics struct {
	mu      sync.Mutex
	signups []error
	signins []error
	swept   int64
}

func (m *recordingMetrics) RecordSignup(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signups = append(m.signups, err)
}

func (m *recordingMetrics) RecordSignin(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signins = append(m.signins, err)
}

func (m *recordingMetrics) RecordSessionsSwept(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.swept += n
}

package repository

import (
	"context"
	"errors"
	"time"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session lookup misses.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository manages web session persistence.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the hash of its cookie token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// UpdateLastSeen updates the LastSeenAt timestamp for a session.
	UpdateLastSeen(ctx context.Context, id uuid.UUID, lastSeen time.Time) error

	// Delete removes a session by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes every session expired at now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

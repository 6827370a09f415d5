package usecase

import (
	"context"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for cookie session management.
type SessionUsecase interface {
	// Start opens a session for the user and returns the opaque token for the cookie.
	Start(ctx context.Context, userID uuid.UUID, userAgent, ipAddress string) (string, *entity.Session, error)

	// Resolve returns the live session behind a token.
	Resolve(ctx context.Context, token string) (*entity.Session, error)

	// End removes the session behind a token. Unknown tokens are ignored.
	End(ctx context.Context, token string) error

	// Cleanup removes expired sessions and returns how many were removed.
	Cleanup(ctx context.Context) (int64, error)
}

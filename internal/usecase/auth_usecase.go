// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Email    string
	Password string
}

// SigninInput defines the credentials presented at signin.
type SigninInput struct {
	Email    string
	Password string
}

// AuthUsecase defines the password authentication operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Signup creates an account for an unused email and returns it.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Signin checks the credentials and returns the matching account.
	Signin(ctx context.Context, input *SigninInput) (*entity.User, error)

	// CurrentUser loads the account a session belongs to.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

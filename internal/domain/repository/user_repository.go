// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches an id lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned by Create when the store's uniqueness constraint on email fires.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository is the user store consumed by the authentication service.
type UserRepository interface {
	// Find returns every user whose email equals the given one. An empty slice means no account.
	Find(ctx context.Context, email string) ([]*entity.User, error)

	// Create persists a new user and returns it with its assigned ID.
	// Implementations must enforce email uniqueness atomically and report violations as ErrEmailTaken.
	Create(ctx context.Context, email, passwordHash string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

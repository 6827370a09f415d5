// Package memory provides process-local implementations of the persistence interfaces.
// It backs the "memory" storage driver and doubles as the fake store in tests.
package memory

import (
	"context"
	"sync"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds users and sessions behind a single lock.
type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]*entity.User
	byEmail  map[string]uuid.UUID
	sessions map[uuid.UUID]*entity.Session
	byToken  map[string]uuid.UUID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*entity.User),
		byEmail:  make(map[string]uuid.UUID),
		sessions: make(map[uuid.UUID]*entity.Session),
		byToken:  make(map[string]uuid.UUID),
	}
}

// NewUserRepository exposes the store as a UserRepository.
func NewUserRepository(s *Store) repository.UserRepository {
	return &userRepository{store: s}
}

// NewSessionRepository exposes the store as a SessionRepository.
func NewSessionRepository(s *Store) repository.SessionRepository {
	return &sessionRepository{store: s}
}

// NewTransactionManager returns a TransactionManager whose factory hands out the store's repositories.
// Individual repository calls are atomic; a failed callback does not roll back earlier writes.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.store)
}

func (f *repositoryFactory) SessionRepo() repository.SessionRepository {
	return NewSessionRepository(f.store)
}

// Execute runs fn with repositories backed by the store.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(&repositoryFactory{store: tm.store})
}

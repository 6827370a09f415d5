package memory

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

func (repo *userRepository) Find(ctx context.Context, email string) ([]*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	id, ok := repo.store.byEmail[email]
	if !ok {
		return []*entity.User{}, nil
	}

	return []*entity.User{cloneUser(repo.store.users[id])}, nil
}

// Create checks and inserts under the write lock, so concurrent signups for one email cannot both win.
func (repo *userRepository) Create(ctx context.Context, email, passwordHash string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, exists := repo.store.byEmail[email]; exists {
		return nil, repository.ErrEmailTaken
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	repo.store.users[user.ID] = user
	repo.store.byEmail[email] = user.ID

	return cloneUser(user), nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func cloneUser(u *entity.User) *entity.User {
	c := *u

	return &c
}

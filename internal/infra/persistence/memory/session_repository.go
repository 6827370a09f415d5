package memory

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"

	"github.com/google/uuid"
)

type sessionRepository struct {
	store *Store
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	c := *session
	repo.store.sessions[c.ID] = &c
	repo.store.byToken[c.TokenHash] = c.ID

	return nil
}

func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	id, ok := repo.store.byToken[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	c := *repo.store.sessions[id]

	return &c, nil
}

func (repo *sessionRepository) UpdateLastSeen(ctx context.Context, id uuid.UUID, lastSeen time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	session, ok := repo.store.sessions[id]
	if !ok {
		return repository.ErrSessionNotFound
	}
	session.LastSeenAt = lastSeen

	return nil
}

func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	session, ok := repo.store.sessions[id]
	if !ok {
		return repository.ErrSessionNotFound
	}
	delete(repo.store.byToken, session.TokenHash)
	delete(repo.store.sessions, id)

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	var removed int64
	for id, session := range repo.store.sessions {
		if session.IsExpiredAt(now) {
			delete(repo.store.byToken, session.TokenHash)
			delete(repo.store.sessions, id)
			removed++
		}
	}

	return removed, nil
}

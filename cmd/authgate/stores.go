package main

import (
	"log/slog"

	"authgate/config"
	"authgate/internal/domain/repository"
	"authgate/internal/infra/persistence/memory"
	"authgate/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storesParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type stores struct {
	fx.Out

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	TxManager   repository.TransactionManager
}

// newStores builds the repositories for the configured storage driver.
func newStores(params storesParams) (stores, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; accounts and sessions are lost on restart")
		store := memory.NewStore()

		return stores{
			UserRepo:    memory.NewUserRepository(store),
			SessionRepo: memory.NewSessionRepository(store),
			TxManager:   memory.NewTransactionManager(store),
		}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return stores{}, err
		}

		return stores{
			UserRepo:    postgres.NewUserRepository(db),
			SessionRepo: postgres.NewSessionRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil
	default:
		return stores{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

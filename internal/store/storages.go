package store

import (
	"context"

	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages connects to the configured PostgreSQL instance and wires up
// all repositories on top of the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}, nil
}

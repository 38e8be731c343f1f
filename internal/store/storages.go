package store

import (
	"context"
	"fmt"

	"github.com/mzhakenov/go-goal-keeper/internal/config"
	"github.com/mzhakenov/go-goal-keeper/internal/logger"
)

// Storages groups all server-side repositories into a single value the
// service layer is wired with.
type Storages struct {
	UserRepository     UserRepository
	ActionRepository   ActionRepository
	ProgressRepository ProgressRepository
}

// NewStorages opens the PostgreSQL connection, runs pending schema
// migrations, and constructs the repository set.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ActionRepository:   NewActionRepository(db, logger),
		ProgressRepository: NewProgressRepository(db, logger),
	}, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/mzhakenov/go-goal-keeper/internal/config"
	"github.com/mzhakenov/go-goal-keeper/internal/logger"
)

// ClientStorages groups the client-side storage repositories. Currently it
// holds only the local cache mirror.
type ClientStorages struct {
	// Cache is the SQLite-backed durable mirror of the sync queue's state.
	Cache LocalCacheRepository
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite database at cfg.DB.DSN (creating the file when missing), applies
// pending client schema migrations, and wires a fresh
// [LocalCacheRepository].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("client migration failed: %w", err)
	}

	return &ClientStorages{
		Cache: NewLocalCacheRepository(db, logger),
	}, nil
}

package store

import (
	"database/sql"

	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/migrations"
)

// DB wraps the standard *sql.DB with the application logger and an error
// classifier used to decide whether a failed statement is worth retrying.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// Migrate applies all pending server-side schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

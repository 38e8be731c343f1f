package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/models"
)

// localCacheRepository is the SQLite-backed implementation of
// [LocalCacheRepository].
//
// Both stores use replace-wholesale semantics inside a transaction: the sync
// queue owns ordering and content in memory, the cache only mirrors them.
// Mutation payloads are persisted as JSON blobs so the queue's schema does
// not leak into the cache schema.
type localCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalCacheRepository constructs a [LocalCacheRepository] backed by the
// provided local database connection and logger.
func NewLocalCacheRepository(db *DB, logger *logger.Logger) LocalCacheRepository {
	return &localCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localCacheRepository) LoadActions(ctx context.Context) ([]models.Action, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getActionSnapshot)
	if err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.LoadActions").
			Msg("failed to query action snapshot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var actions []models.Action
	for rows.Next() {
		var action models.Action
		if scanErr := rows.Scan(
			&action.ID,
			&action.Title,
			&action.Description,
			&action.TargetCount,
			&action.CurrentCount,
			&action.Completed,
			&action.CreatedAt,
			&action.UpdatedAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localCacheRepository.LoadActions").
				Msg("failed to scan snapshot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		actions = append(actions, action)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localCacheRepository.LoadActions").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return actions, nil
}

func (l *localCacheRepository) SaveActions(ctx context.Context, actions []models.Action) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearActionSnapshot); err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.SaveActions").
			Msg("failed to clear action snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for i, action := range actions {
		if _, err = tx.ExecContext(ctx, insertSnapshotAction,
			i,
			action.ID,
			action.Title,
			action.Description,
			action.TargetCount,
			action.CurrentCount,
			action.Completed,
			action.CreatedAt,
			action.UpdatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "localCacheRepository.SaveActions").
				Int64("action_id", action.ID).
				Msg("failed to insert snapshot row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (l *localCacheRepository) LoadMutations(ctx context.Context) ([]models.PendingMutation, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getPendingMutations)
	if err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.LoadMutations").
			Msg("failed to query pending mutations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var mutations []models.PendingMutation
	for rows.Next() {
		var kind string
		var payload []byte
		if scanErr := rows.Scan(&kind, &payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localCacheRepository.LoadMutations").
				Msg("failed to scan mutation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		var action models.Action
		if err = json.Unmarshal(payload, &action); err != nil {
			log.Err(err).
				Str("func", "localCacheRepository.LoadMutations").
				Msg("failed to decode mutation payload")
			return nil, fmt.Errorf("failed to decode mutation payload: %w", err)
		}

		mutations = append(mutations, models.PendingMutation{
			Kind:   models.MutationKind(kind),
			Action: action,
		})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localCacheRepository.LoadMutations").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return mutations, nil
}

func (l *localCacheRepository) SaveMutations(ctx context.Context, mutations []models.PendingMutation) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearPendingMutations); err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.SaveMutations").
			Msg("failed to clear pending mutations")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for i, mutation := range mutations {
		payload, marshalErr := json.Marshal(mutation.Action)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode mutation payload: %w", marshalErr)
		}

		if _, err = tx.ExecContext(ctx, insertPendingMutation, i, string(mutation.Kind), payload); err != nil {
			log.Err(err).
				Str("func", "localCacheRepository.SaveMutations").
				Int("position", i).
				Msg("failed to insert mutation row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

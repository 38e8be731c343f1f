package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/models"
)

// actionRepository is the PostgreSQL-backed implementation of
// [ActionRepository]. Every query is scoped by user_id so that one user's
// rows are invisible to another; a miss on (id, user_id) surfaces as
// [ErrActionNotFound] regardless of whether the row exists for someone else.
type actionRepository struct {
	*DB
	logger *logger.Logger
}

// NewActionRepository constructs an [ActionRepository] backed by the provided
// database connection and logger.
func NewActionRepository(db *DB, logger *logger.Logger) ActionRepository {
	return &actionRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *actionRepository) CreateAction(ctx context.Context, action models.Action) (models.Action, error) {
	log := logger.FromContext(ctx)

	// completed is derived, never trusted from the payload.
	completed := action.CurrentCount >= action.TargetCount

	row := a.DB.QueryRowContext(ctx, createAction,
		action.UserID,
		action.Title,
		action.Description,
		action.TargetCount,
		action.CurrentCount,
		completed,
	)

	created, err := scanAction(row)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.CreateAction").
			Int64("user_id", action.UserID).
			Msg("failed to insert action")
		return models.Action{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (a *actionRepository) GetAction(ctx context.Context, id, userID int64) (models.Action, error) {
	log := logger.FromContext(ctx)

	action, err := scanAction(a.DB.QueryRowContext(ctx, getAction, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Action{}, ErrActionNotFound
		}

		log.Err(err).
			Str("func", "actionRepository.GetAction").
			Int64("user_id", userID).
			Int64("action_id", id).
			Msg("failed to query action")
		return models.Action{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return action, nil
}

func (a *actionRepository) ListActions(ctx context.Context, userID int64) ([]models.Action, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActionsQuery(ctx, userID, nil)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.ListActions").
			Int64("user_id", userID).
			Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.ListActions").
			Int64("user_id", userID).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	actions := make([]models.Action, 0, 16)
	for rows.Next() {
		var action models.Action
		if scanErr := rows.Scan(
			&action.ID,
			&action.UserID,
			&action.Title,
			&action.Description,
			&action.TargetCount,
			&action.CurrentCount,
			&action.Completed,
			&action.CreatedAt,
			&action.UpdatedAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "actionRepository.ListActions").
				Int64("user_id", userID).
				Msg("failed to scan action row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		actions = append(actions, action)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "actionRepository.ListActions").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return actions, nil
}

// UpdateAction applies the provided fields of patch inside a transaction that
// locks the target row, so the derived completed flag is recomputed against a
// consistent view of current and target counts.
func (a *actionRepository) UpdateAction(ctx context.Context, id, userID int64, patch models.UpdateActionRequest) (models.Action, error) {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.UpdateAction").
			Int64("user_id", userID).
			Int64("action_id", id).
			Msg("failed to begin transaction")
		return models.Action{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := scanAction(tx.QueryRowContext(ctx, getActionForUpdate, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Action{}, ErrActionNotFound
		}
		return models.Action{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if patch.Title != nil {
		current.Title = *patch.Title
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.TargetCount != nil {
		current.TargetCount = *patch.TargetCount
	}
	if patch.CurrentCount != nil {
		current.CurrentCount = *patch.CurrentCount
	}
	current.Completed = current.CurrentCount >= current.TargetCount

	updated, err := scanAction(tx.QueryRowContext(ctx, updateActionRow,
		current.Title,
		current.Description,
		current.TargetCount,
		current.CurrentCount,
		current.Completed,
		id,
		userID,
	))
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.UpdateAction").
			Int64("user_id", userID).
			Int64("action_id", id).
			Msg("failed to update action row")
		return models.Action{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Action{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return updated, nil
}

func (a *actionRepository) DeleteAction(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, deleteAction, id, userID)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.DeleteAction").
			Int64("user_id", userID).
			Int64("action_id", id).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrActionNotFound
	}

	return nil
}

func scanAction(row *sql.Row) (models.Action, error) {
	var action models.Action
	err := row.Scan(
		&action.ID,
		&action.UserID,
		&action.Title,
		&action.Description,
		&action.TargetCount,
		&action.CurrentCount,
		&action.Completed,
		&action.CreatedAt,
		&action.UpdatedAt,
	)
	return action, err
}

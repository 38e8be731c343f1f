package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/models"
)

// progressRepository is the PostgreSQL-backed implementation of
// [ProgressRepository].
//
// Each operation runs as one transaction holding a row lock on the owning
// action: the progress event insert and the action's current/completed
// update are observed together or not at all. Transactions that fail with a
// transient error (per the connection's [ErrorClassifier]) are retried a
// bounded number of times.
type progressRepository struct {
	*DB
	logger *logger.Logger
}

const progressTxAttempts = 3

// NewProgressRepository constructs a [ProgressRepository] backed by the
// provided database connection and logger.
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	return &progressRepository{
		DB:     db,
		logger: logger,
	}
}

// Record applies a positive delta to the action identified by actionID,
// clamped so current never exceeds target.
//
// Domain rules, checked under the row lock:
//   - missing or foreign action        -> [ErrActionNotFound]
//   - completed flag already set       -> [ErrActionCompleted]
//   - clamped delta not positive       -> [ErrAlreadyAtMaximum]
//
// The inserted progress event carries the effective (clamped) delta.
func (p *progressRepository) Record(ctx context.Context, userID, actionID int64, count int) (models.ProgressResult, error) {
	return p.withRetry(ctx, func() (models.ProgressResult, error) {
		return p.record(ctx, userID, actionID, count)
	})
}

// Decrement applies a fixed -1 delta floored at zero and clears the
// completed flag, reopening a completed action. Returns
// [ErrAlreadyAtMinimum] when current is already zero.
func (p *progressRepository) Decrement(ctx context.Context, userID, actionID int64) (models.ProgressResult, error) {
	return p.withRetry(ctx, func() (models.ProgressResult, error) {
		return p.decrement(ctx, userID, actionID)
	})
}

func (p *progressRepository) record(ctx context.Context, userID, actionID int64, count int) (models.ProgressResult, error) {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	action, err := scanAction(tx.QueryRowContext(ctx, getActionForUpdate, actionID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProgressResult{}, ErrActionNotFound
		}
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if action.Completed {
		return models.ProgressResult{}, ErrActionCompleted
	}

	// Clamp: never push current past target, record what was applied.
	newCount := min(action.CurrentCount+count, action.TargetCount)
	effective := newCount - action.CurrentCount
	if effective <= 0 {
		return models.ProgressResult{}, ErrAlreadyAtMaximum
	}

	var event models.Progress
	if err = tx.QueryRowContext(ctx, insertProgress, actionID, effective).
		Scan(&event.ID, &event.ActionID, &event.Count, &event.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "progressRepository.Record").
			Int64("action_id", actionID).
			Msg("failed to insert progress event")
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	completed := newCount >= action.TargetCount
	updated, err := scanAction(tx.QueryRowContext(ctx, updateActionProgress, newCount, completed, actionID))
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.Record").
			Int64("action_id", actionID).
			Msg("failed to update action counts")
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return models.ProgressResult{Progress: event, Action: updated}, nil
}

func (p *progressRepository) decrement(ctx context.Context, userID, actionID int64) (models.ProgressResult, error) {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	action, err := scanAction(tx.QueryRowContext(ctx, getActionForUpdate, actionID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProgressResult{}, ErrActionNotFound
		}
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if action.CurrentCount <= 0 {
		return models.ProgressResult{}, ErrAlreadyAtMinimum
	}

	var event models.Progress
	if err = tx.QueryRowContext(ctx, insertProgress, actionID, -1).
		Scan(&event.ID, &event.ActionID, &event.Count, &event.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "progressRepository.Decrement").
			Int64("action_id", actionID).
			Msg("failed to insert progress event")
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// A decrement always reopens the action.
	updated, err := scanAction(tx.QueryRowContext(ctx, updateActionProgress, action.CurrentCount-1, false, actionID))
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.Decrement").
			Int64("action_id", actionID).
			Msg("failed to update action counts")
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return models.ProgressResult{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return models.ProgressResult{Progress: event, Action: updated}, nil
}

// withRetry re-runs op while the connection's classifier reports the failure
// as transient (deadlock, serialization failure, connection loss), up to
// progressTxAttempts attempts.
func (p *progressRepository) withRetry(ctx context.Context, op func() (models.ProgressResult, error)) (models.ProgressResult, error) {
	log := logger.FromContext(ctx)

	var result models.ProgressResult
	var err error
	for attempt := 1; attempt <= progressTxAttempts; attempt++ {
		result, err = op()
		if err == nil || p.errorClassifier.Classify(err) != Retryable {
			return result, err
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("transient progress transaction failure, retrying")
	}

	return result, err
}

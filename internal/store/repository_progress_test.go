package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/models"
)

func newTestProgressRepo(t *testing.T) (*progressRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &progressRepository{
		DB:     &DB{DB: db, logger: l, errorClassifier: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func progressRow(id, actionID int64, count int, at time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "action_id", "count", "created_at"}).
		AddRow(id, actionID, count, at)
}

func TestRecord_ClampsDeltaAtTarget(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	// current=95, target=100, запрошено +10: применяется только +5
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(5), int64(42)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 100, CurrentCount: 95,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectQuery("INSERT INTO progress").
		WithArgs(int64(5), 5).
		WillReturnRows(progressRow(1, 5, 5, now))
	mock.ExpectQuery("UPDATE actions").
		WithArgs(100, true, int64(5)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 100, CurrentCount: 100, Completed: true,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectCommit()

	result, err := repo.Record(ctx, 42, 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Progress.Count != 5 {
		t.Errorf("expected the event to carry the clamped delta 5, got %d", result.Progress.Count)
	}
	if !result.Action.Completed {
		t.Error("expected the action to be completed after reaching the target")
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecord_CompletedActionRejected(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(5), int64(42)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 100, CurrentCount: 100, Completed: true,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectRollback()

	_, err := repo.Record(context.Background(), 42, 5, 1)
	if !errors.Is(err, ErrActionCompleted) {
		t.Fatalf("expected ErrActionCompleted, got %v", err)
	}
}

func TestRecord_AlreadyAtMaximum(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	now := time.Now()
	// current == target, но флаг не выставлен: клэмп даёт нулевую дельту
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(5), int64(42)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 100, CurrentCount: 100,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectRollback()

	_, err := repo.Record(context.Background(), 42, 5, 3)
	if !errors.Is(err, ErrAlreadyAtMaximum) {
		t.Fatalf("expected ErrAlreadyAtMaximum, got %v", err)
	}
}

func TestRecord_ActionNotFound(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(404), int64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Record(context.Background(), 42, 404, 1)
	if !errors.Is(err, ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}

func TestRecord_RetriesTransientFailure(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	now := time.Now()

	// Первая попытка падает дедлоком, вторая проходит целиком.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(5), int64(42)).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(5), int64(42)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 10, CurrentCount: 0,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectQuery("INSERT INTO progress").
		WithArgs(int64(5), 1).
		WillReturnRows(progressRow(1, 5, 1, now))
	mock.ExpectQuery("UPDATE actions").
		WithArgs(1, false, int64(5)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 10, CurrentCount: 1,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectCommit()

	result, err := repo.Record(context.Background(), 42, 5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action.CurrentCount != 1 {
		t.Errorf("expected current count 1, got %d", result.Action.CurrentCount)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDecrement_ReopensCompletedAction(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(5), int64(42)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 100, CurrentCount: 100, Completed: true,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectQuery("INSERT INTO progress").
		WithArgs(int64(5), -1).
		WillReturnRows(progressRow(2, 5, -1, now))
	// декремент всегда сбрасывает completed
	mock.ExpectQuery("UPDATE actions").
		WithArgs(99, false, int64(5)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 100, CurrentCount: 99,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectCommit()

	result, err := repo.Decrement(context.Background(), 42, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action.Completed {
		t.Error("expected the action to be reopened")
	}
	if result.Progress.Count != -1 {
		t.Errorf("expected the event to carry -1, got %d", result.Progress.Count)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDecrement_AlreadyAtMinimum(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(5), int64(42)).
		WillReturnRows(actionRow(models.Action{
			ID: 5, UserID: 42, Title: "read", TargetCount: 100, CurrentCount: 0,
			CreatedAt: now, UpdatedAt: now,
		}))
	mock.ExpectRollback()

	_, err := repo.Decrement(context.Background(), 42, 5)
	if !errors.Is(err, ErrAlreadyAtMinimum) {
		t.Fatalf("expected ErrAlreadyAtMinimum, got %v", err)
	}
}

func TestDecrement_ActionNotFound(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM actions (.+) FOR UPDATE").
		WithArgs(int64(404), int64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Decrement(context.Background(), 42, 404)
	if !errors.Is(err, ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}

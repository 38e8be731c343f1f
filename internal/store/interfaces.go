// Package store implements the persistence layer: PostgreSQL-backed
// repositories for the server (users, actions, progress events) and the
// SQLite-backed local cache the offline client mirrors its state into.
package store

import (
	"context"

	"github.com/mzhakenov/go-goal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its email.
	// Returns [ErrNoUserWasFound] when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ActionRepository persists actions. Every method scopes its work to the
// given userID; rows owned by other users are invisible.
type ActionRepository interface {
	CreateAction(ctx context.Context, action models.Action) (models.Action, error)
	GetAction(ctx context.Context, id, userID int64) (models.Action, error)
	ListActions(ctx context.Context, userID int64) ([]models.Action, error)

	// UpdateAction applies the non-nil fields of patch to the action and
	// returns the resulting row. Returns [ErrActionNotFound] when the id
	// does not exist for userID.
	UpdateAction(ctx context.Context, id, userID int64, patch models.UpdateActionRequest) (models.Action, error)

	// DeleteAction removes the action and, through the schema's cascade,
	// its progress events. Returns [ErrActionNotFound] when nothing was
	// deleted.
	DeleteAction(ctx context.Context, id, userID int64) error
}

// ProgressRepository records progress events. Record and Decrement each run
// as a single transaction: the event insert and the owning action's
// current/completed update are observed together or not at all.
type ProgressRepository interface {
	// Record applies a positive delta to the action, clamped so the current
	// count never exceeds the target. The inserted event carries the
	// effective (possibly clamped) delta.
	//
	// Returns [ErrActionNotFound], [ErrActionCompleted] when the action is
	// already complete, or [ErrAlreadyAtMaximum] when the clamped delta is
	// not positive.
	Record(ctx context.Context, userID, actionID int64, count int) (models.ProgressResult, error)

	// Decrement applies a fixed -1 delta floored at zero and always clears
	// the completed flag. Returns [ErrAlreadyAtMinimum] when the current
	// count is already zero.
	Decrement(ctx context.Context, userID, actionID int64) (models.ProgressResult, error)
}

// Package adapter provides transport-layer abstractions for communicating
// with the goal-keeper server.
//
// The primary abstraction is [ActionClient], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPActionClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// well-known response bodies by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/mzhakenov/go-goal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/action_client_mock.go -package=mock

// ActionClient defines transport-agnostic communication with the goal-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level failures to the sentinel
// errors defined in this package.
type ActionClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Signup or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Signup registers a new account. On success the returned bearer token
	// is stored via SetToken and the server-assigned user id is returned.
	Signup(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account. On success the returned
	// bearer token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// ListActions fetches the authoritative full action list for the
	// authenticated user.
	ListActions(ctx context.Context) ([]models.Action, error)

	// CreateAction creates an action and returns the authoritative record
	// with the server-assigned identifier and timestamps.
	CreateAction(ctx context.Context, payload models.CreateActionRequest) (models.Action, error)

	// UpdateAction applies a partial update to the action with the given id
	// and returns the server's resulting record. Returns
	// [ErrInvalidResponse] when the server answers 2xx but the payload
	// lacks a usable action.
	UpdateAction(ctx context.Context, id int64, payload models.UpdateActionRequest) (models.Action, error)

	// DeleteAction deletes the action with the given id. Deleting an
	// already-absent id is not an error: the sync queue replays deletes
	// whose target may never have reached the server.
	DeleteAction(ctx context.Context, id int64) error

	// RecordProgress applies a positive delta to the action's current
	// count, subject to server-side clamping. Returns the recorded event
	// and the updated action.
	RecordProgress(ctx context.Context, actionID int64, count int) (models.ProgressResult, error)

	// DecrementProgress applies a fixed -1 delta floored at zero.
	DecrementProgress(ctx context.Context, actionID int64) (models.ProgressResult, error)
}

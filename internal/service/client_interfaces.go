package service

import (
	"context"
	"time"

	"github.com/mzhakenov/go-goal-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncQueue is the offline synchronization queue: it owns the client's
// in-memory action set and the pending-mutation log, and implements the
// buffer/flush/reconcile algorithm.
//
// While ONLINE every mutation goes straight to the server and local state
// changes only on confirmation. While OFFLINE mutations are applied
// optimistically to local state and buffered; the buffered log replays in
// FIFO order on the next transition to ONLINE.
type ClientSyncQueue interface {
	// Load initialises in-memory state from the local persistent cache.
	// Called once at startup, before any other method.
	Load(ctx context.Context) error

	// Actions returns a snapshot of the in-memory action set, oldest first.
	Actions() []models.Action

	// PendingCount reports the current length of the pending-mutation log.
	PendingCount() int

	// Online reports the current connectivity flag.
	Online() bool

	// SetOnline flips the connectivity flag. A transition from offline to
	// online triggers an asynchronous flush; a transition to offline is a
	// pure flag flip.
	SetOnline(ctx context.Context, online bool)

	// ToggleOnline inverts the connectivity flag with SetOnline semantics.
	ToggleOnline(ctx context.Context)

	// Subscribe registers a listener invoked with a fresh snapshot after
	// every change to the in-memory action set. The returned function
	// removes the listener.
	Subscribe(listener func([]models.Action)) (unsubscribe func())

	// CreateAction creates an action. Online: server call first, local
	// insert on confirmation. Offline: optimistic insert under a temporary
	// negative identifier plus a buffered create mutation.
	CreateAction(ctx context.Context, req models.CreateActionRequest) (models.Action, error)

	// UpdateAction replaces an action with the given value. Online: on a
	// malformed server response the optimistic local value is kept and
	// adapter.ErrInvalidResponse is returned. Offline: optimistic replace
	// plus a buffered update mutation.
	UpdateAction(ctx context.Context, action models.Action) (models.Action, error)

	// DeleteAction removes an action. Online: local removal only after
	// server confirmation. Offline: immediate removal plus a buffered
	// delete mutation carrying the last known payload.
	DeleteAction(ctx context.Context, id int64) error

	// RecordProgress applies a positive progress delta. Never queued:
	// returns ErrNotConnected while offline.
	RecordProgress(ctx context.Context, actionID int64, count int) (models.ProgressResult, error)

	// DecrementProgress undoes one unit of progress. Never queued: returns
	// ErrNotConnected while offline.
	DecrementProgress(ctx context.Context, actionID int64) (models.ProgressResult, error)

	// Flush drains the pending-mutation log against the server in FIFO
	// order, best effort: failed mutations stay buffered in their original
	// relative order. Only when the log drains empty is local state
	// replaced from an authoritative refetch. A flush already in progress
	// makes Flush a no-op.
	Flush(ctx context.Context) error

	// Refresh refetches the authoritative action list and replaces local
	// state, provided the client is online and the mutation log is empty.
	Refresh(ctx context.Context) error
}

// ClientAuthService handles account registration and login against the
// server, storing the issued bearer token in the adapter.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, user models.User) error
}

// ConnectivitySignal is the host-driven online/offline indicator. The host
// environment reports transitions via Set; interested parties observe the
// current state and subscribe to changes.
type ConnectivitySignal interface {
	// Online reports the current state.
	Online() bool

	// Set records a new state and, on an actual transition, notifies all
	// subscribers with the new value.
	Set(online bool)

	// Subscribe registers a listener for transition events. The returned
	// function removes the listener.
	Subscribe(listener func(online bool)) (unsubscribe func())
}

// ClientRefreshJob is a background worker that periodically refreshes local
// state from the server while the client is online and has nothing buffered.
type ClientRefreshJob interface {
	// Start launches the background goroutine, stopping any previous run
	// first. It refreshes every interval, defaulting to 30 seconds if
	// interval is zero or negative.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

package store

import (
	"context"

	"github.com/mzhakenov/go-goal-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalCacheRepository is the durable mirror of the client's in-memory state:
// the last known action list and the pending-mutation log.
//
// The cache is write-through. The sync queue saves after every state change
// and reads only once, at startup, so a crash mid-flush loses at most the
// in-flight call, never the queue.
type LocalCacheRepository interface {
	// LoadActions returns the persisted action snapshot, oldest first.
	LoadActions(ctx context.Context) ([]models.Action, error)

	// SaveActions replaces the persisted snapshot wholesale.
	SaveActions(ctx context.Context, actions []models.Action) error

	// LoadMutations returns the persisted pending-mutation log in enqueue
	// order.
	LoadMutations(ctx context.Context) ([]models.PendingMutation, error)

	// SaveMutations replaces the persisted pending-mutation log wholesale,
	// preserving the given order.
	SaveMutations(ctx context.Context, mutations []models.PendingMutation) error
}

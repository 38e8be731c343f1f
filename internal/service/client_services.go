package service

import (
	"context"

	"github.com/mzhakenov/go-goal-keeper/internal/adapter"
	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/internal/store"
)

// ClientServices is the client-side facade: everything a UI layer needs to
// authenticate, read and mutate actions, and react to connectivity changes.
type ClientServices struct {
	AuthService  ClientAuthService
	SyncQueue    ClientSyncQueue
	Connectivity ConnectivitySignal
	RefreshJob   ClientRefreshJob
}

// NewClientServices wires the client services together: the sync queue over
// the remote adapter and local cache, the connectivity signal driving the
// queue's online flag, and the periodic refresh job.
func NewClientServices(remote adapter.ActionClient, cache store.LocalCacheRepository, logger *logger.Logger) *ClientServices {
	queue := NewClientSyncQueue(remote, cache, logger)
	connectivity := NewConnectivitySignal()
	connectivity.Subscribe(func(online bool) {
		queue.SetOnline(context.Background(), online)
	})

	return &ClientServices{
		AuthService:  NewClientAuthService(remote, logger),
		SyncQueue:    queue,
		Connectivity: connectivity,
		RefreshJob:   NewClientRefreshJob(queue),
	}
}

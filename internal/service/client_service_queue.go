// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madi Zhakenov

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mzhakenov/go-goal-keeper/internal/adapter"
	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/internal/store"
	"github.com/mzhakenov/go-goal-keeper/models"
)

// syncQueue is the concrete implementation of ClientSyncQueue.
//
// It is the sole writer of the in-memory action set and the pending-mutation
// log. The local cache is a write-through mirror: saved after every state
// change, read only by Load. All remote calls happen outside the mutex so a
// slow network never blocks readers.
type syncQueue struct {
	remote adapter.ActionClient
	cache  store.LocalCacheRepository
	logger *logger.Logger

	mu             sync.Mutex
	online         bool
	flushing       bool
	actions        []models.Action
	pending        []models.PendingMutation
	listeners      map[int]func([]models.Action)
	nextListenerID int
	lastTempID     int64
}

// NewClientSyncQueue constructs a sync queue wired to the given remote client
// and local cache. The queue starts in the ONLINE state and with empty state;
// call Load to restore the persisted snapshot and mutation log.
func NewClientSyncQueue(remote adapter.ActionClient, cache store.LocalCacheRepository, logger *logger.Logger) ClientSyncQueue {
	return &syncQueue{
		remote:    remote,
		cache:     cache,
		logger:    logger,
		online:    true,
		listeners: make(map[int]func([]models.Action)),
	}
}

// Load implements ClientSyncQueue.
func (q *syncQueue) Load(ctx context.Context) error {
	actions, err := q.cache.LoadActions(ctx)
	if err != nil {
		return fmt.Errorf("loading cached actions failed: %w", err)
	}

	mutations, err := q.cache.LoadMutations(ctx)
	if err != nil {
		return fmt.Errorf("loading cached mutations failed: %w", err)
	}

	q.mu.Lock()
	q.actions = actions
	q.pending = mutations
	q.mu.Unlock()

	return nil
}

// Actions implements ClientSyncQueue.
func (q *syncQueue) Actions() []models.Action {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.actions)
}

// PendingCount implements ClientSyncQueue.
func (q *syncQueue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Online implements ClientSyncQueue.
func (q *syncQueue) Online() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.online
}

// SetOnline implements ClientSyncQueue. The offline-to-online transition
// triggers the flush asynchronously; the caller does not wait for the drain.
func (q *syncQueue) SetOnline(ctx context.Context, online bool) {
	q.mu.Lock()
	wasOnline := q.online
	q.online = online
	q.mu.Unlock()

	if online && !wasOnline {
		flushCtx := context.WithoutCancel(ctx)
		go func() {
			if err := q.Flush(flushCtx); err != nil {
				logger.FromContext(flushCtx).Err(err).Msg("flush after reconnect finished with errors")
			}
		}()
	}
}

// ToggleOnline implements ClientSyncQueue.
func (q *syncQueue) ToggleOnline(ctx context.Context) {
	q.SetOnline(ctx, !q.Online())
}

// Subscribe implements ClientSyncQueue.
func (q *syncQueue) Subscribe(listener func([]models.Action)) func() {
	q.mu.Lock()
	id := q.nextListenerID
	q.nextListenerID++
	q.listeners[id] = listener
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.listeners, id)
		q.mu.Unlock()
	}
}

// CreateAction implements ClientSyncQueue.
func (q *syncQueue) CreateAction(ctx context.Context, req models.CreateActionRequest) (models.Action, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.TargetCount < 0 {
		log.Error().Str("title", req.Title).Msg("invalid action data provided")
		return models.Action{}, ErrInvalidDataProvided
	}

	if q.Online() {
		created, err := q.remote.CreateAction(ctx, req)
		if err != nil {
			log.Err(err).Str("title", req.Title).Msg("remote action creation failed")
			return models.Action{}, fmt.Errorf("remote action creation failed: %w", err)
		}

		q.mu.Lock()
		q.actions = append(q.actions, created)
		actions, listeners := q.snapshotLocked()
		q.mu.Unlock()

		q.persistActions(ctx, actions)
		q.notify(listeners, actions)
		return created, nil
	}

	// Offline: optimistic insert under a temporary identifier plus a
	// buffered create mutation. The server record replaces the candidate
	// after a successful flush.
	targetCount := req.TargetCount
	if targetCount == 0 {
		targetCount = defaultTargetCount
	}
	now := time.Now()

	q.mu.Lock()
	candidate := models.Action{
		ID:          q.newTempIDLocked(),
		Title:       req.Title,
		Description: req.Description,
		TargetCount: targetCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	q.actions = append(q.actions, candidate)
	q.pending = append(q.pending, models.PendingMutation{Kind: models.MutationCreate, Action: candidate})
	actions, mutations, listeners := q.snapshotAllLocked()
	q.mu.Unlock()

	q.persistActions(ctx, actions)
	q.persistMutations(ctx, mutations)
	q.notify(listeners, actions)
	return candidate, nil
}

// UpdateAction implements ClientSyncQueue.
//
// On a malformed 2xx response the optimistic local value is applied as a
// fallback and returned together with adapter.ErrInvalidResponse; any other
// remote failure leaves local state untouched.
func (q *syncQueue) UpdateAction(ctx context.Context, action models.Action) (models.Action, error) {
	log := logger.FromContext(ctx)

	action.Completed = action.CurrentCount >= action.TargetCount
	action.UpdatedAt = time.Now()

	if q.Online() {
		updated, err := q.remote.UpdateAction(ctx, action.ID, patchFromAction(action))
		switch {
		case err == nil:
			q.replaceAction(ctx, action.ID, updated)
			return updated, nil
		case errors.Is(err, adapter.ErrInvalidResponse):
			log.Err(err).Int64("id", action.ID).Msg("malformed update response, keeping optimistic value")
			q.replaceAction(ctx, action.ID, action)
			return action, fmt.Errorf("remote action update failed: %w", err)
		default:
			log.Err(err).Int64("id", action.ID).Msg("remote action update failed")
			return models.Action{}, fmt.Errorf("remote action update failed: %w", err)
		}
	}

	q.mu.Lock()
	idx := indexOfAction(q.actions, action.ID)
	if idx < 0 {
		q.mu.Unlock()
		log.Error().Int64("id", action.ID).Msg("action to update is not known locally")
		return models.Action{}, adapter.ErrActionNotFound
	}
	q.actions[idx] = action
	q.pending = append(q.pending, models.PendingMutation{Kind: models.MutationUpdate, Action: action})
	actions, mutations, listeners := q.snapshotAllLocked()
	q.mu.Unlock()

	q.persistActions(ctx, actions)
	q.persistMutations(ctx, mutations)
	q.notify(listeners, actions)
	return action, nil
}

// DeleteAction implements ClientSyncQueue.
func (q *syncQueue) DeleteAction(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if q.Online() {
		if err := q.remote.DeleteAction(ctx, id); err != nil {
			log.Err(err).Int64("id", id).Msg("remote action deletion failed")
			return fmt.Errorf("remote action deletion failed: %w", err)
		}

		q.mu.Lock()
		if idx := indexOfAction(q.actions, id); idx >= 0 {
			q.actions = slices.Delete(q.actions, idx, idx+1)
		}
		actions, listeners := q.snapshotLocked()
		q.mu.Unlock()

		q.persistActions(ctx, actions)
		q.notify(listeners, actions)
		return nil
	}

	// Offline: immediate removal. The buffered mutation carries the last
	// known payload so the replayed delete can be reconciled and logged.
	q.mu.Lock()
	idx := indexOfAction(q.actions, id)
	if idx < 0 {
		q.mu.Unlock()
		log.Error().Int64("id", id).Msg("action to delete is not known locally")
		return adapter.ErrActionNotFound
	}
	payload := q.actions[idx]
	q.actions = slices.Delete(q.actions, idx, idx+1)
	q.pending = append(q.pending, models.PendingMutation{Kind: models.MutationDelete, Action: payload})
	actions, mutations, listeners := q.snapshotAllLocked()
	q.mu.Unlock()

	q.persistActions(ctx, actions)
	q.persistMutations(ctx, mutations)
	q.notify(listeners, actions)
	return nil
}

// RecordProgress implements ClientSyncQueue. Progress accounting requires
// server-side authoritative clamping, so it is never queued.
func (q *syncQueue) RecordProgress(ctx context.Context, actionID int64, count int) (models.ProgressResult, error) {
	log := logger.FromContext(ctx)

	if !q.Online() {
		return models.ProgressResult{}, ErrNotConnected
	}

	result, err := q.remote.RecordProgress(ctx, actionID, count)
	if err != nil {
		log.Err(err).Int64("actionID", actionID).Int("count", count).Msg("recording progress failed")
		return models.ProgressResult{}, fmt.Errorf("recording progress failed: %w", err)
	}

	q.replaceAction(ctx, actionID, result.Action)
	return result, nil
}

// DecrementProgress implements ClientSyncQueue.
func (q *syncQueue) DecrementProgress(ctx context.Context, actionID int64) (models.ProgressResult, error) {
	log := logger.FromContext(ctx)

	if !q.Online() {
		return models.ProgressResult{}, ErrNotConnected
	}

	result, err := q.remote.DecrementProgress(ctx, actionID)
	if err != nil {
		log.Err(err).Int64("actionID", actionID).Msg("decrementing progress failed")
		return models.ProgressResult{}, fmt.Errorf("decrementing progress failed: %w", err)
	}

	q.replaceAction(ctx, actionID, result.Action)
	return result, nil
}

// Flush implements ClientSyncQueue.
//
// The drain is best effort: every buffered mutation is attempted in FIFO
// order and failures are retained in their original relative order for the
// next flush. The one exception is a rejected credential, which aborts the
// drain so the caller can re-authenticate instead of burning retries. The
// authoritative refetch happens only when the log drained empty; refetching
// over a non-empty log would overwrite optimistic state for mutations the
// server has not confirmed yet.
func (q *syncQueue) Flush(ctx context.Context) error {
	log := logger.FromContext(ctx)

	q.mu.Lock()
	if q.flushing || !q.online {
		q.mu.Unlock()
		return nil
	}
	q.flushing = true
	pending := slices.Clone(q.pending)
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.flushing = false
		q.mu.Unlock()
	}()

	retained := make([]models.PendingMutation, 0, len(pending))
	succeededDeletes := make(map[int64]struct{})
	remapped := make(map[int64]int64)
	held := make(map[int64]struct{})
	var flushErrs []error

	for i, mutation := range pending {
		// A failed mutation holds back later mutations on the same action:
		// replaying them out of order would let a newer edit be overwritten
		// by the retry of an older one.
		if _, blocked := held[mutation.Action.ID]; blocked {
			retained = append(retained, mutation)
			continue
		}

		serverID, err := q.replay(ctx, mutation)
		if err == nil {
			if mutation.Kind == models.MutationCreate && serverID != mutation.Action.ID {
				// The rest of the log may still reference the temporary
				// identifier; rewrite it so the following replays target
				// the record the server just assigned.
				remapActionID(pending[i+1:], mutation.Action.ID, serverID)
				remapped[mutation.Action.ID] = serverID
			}
			if mutation.Kind == models.MutationDelete {
				succeededDeletes[mutation.Action.ID] = struct{}{}
			}
			continue
		}

		flushErrs = append(flushErrs, err)
		if errors.Is(err, adapter.ErrUnauthorized) {
			log.Err(err).Msg("credential rejected during flush, aborting drain")
			retained = append(retained, pending[i:]...)
			break
		}

		log.Err(err).
			Str("kind", string(mutation.Kind)).
			Int64("id", mutation.Action.ID).
			Msg("mutation replay failed, retained for next flush")
		held[mutation.Action.ID] = struct{}{}
		retained = append(retained, mutation)
	}

	// Mutations enqueued while the drain was running (the flag may have
	// flipped offline mid-flush) stay queued behind the retained ones.
	// They may also still carry a temporary identifier a create replay
	// just resolved.
	q.mu.Lock()
	enqueuedDuringFlush := q.pending[len(pending):]
	for tempID, serverID := range remapped {
		remapActionID(enqueuedDuringFlush, tempID, serverID)
	}
	q.pending = append(retained, enqueuedDuringFlush...)
	mutations := slices.Clone(q.pending)
	drained := len(q.pending) == 0
	q.mu.Unlock()

	q.persistMutations(ctx, mutations)

	if !drained {
		return errors.Join(flushErrs...)
	}

	return q.refetch(ctx, succeededDeletes)
}

// Refresh implements ClientSyncQueue. It is a no-op while offline, while a
// flush is running, or while mutations are still buffered; a refetch in any
// of those states could clobber unconfirmed local edits.
func (q *syncQueue) Refresh(ctx context.Context) error {
	q.mu.Lock()
	skip := !q.online || q.flushing || len(q.pending) > 0
	q.mu.Unlock()

	if skip {
		return nil
	}

	return q.refetch(ctx, nil)
}

// replay performs the remote call for one buffered mutation. A successful
// create or update swaps the optimistic in-memory entry for the server's
// authoritative record. For a create the server-assigned identifier is
// returned so the caller can rewrite the rest of the log.
func (q *syncQueue) replay(ctx context.Context, mutation models.PendingMutation) (int64, error) {
	switch mutation.Kind {
	case models.MutationCreate:
		created, err := q.remote.CreateAction(ctx, models.CreateActionRequest{
			Title:       mutation.Action.Title,
			Description: mutation.Action.Description,
			TargetCount: mutation.Action.TargetCount,
		})
		if err != nil {
			return 0, err
		}
		q.replaceAction(ctx, mutation.Action.ID, created)
		return created.ID, nil

	case models.MutationUpdate:
		updated, err := q.remote.UpdateAction(ctx, mutation.Action.ID, patchFromAction(mutation.Action))
		if err != nil {
			return 0, err
		}
		q.replaceAction(ctx, mutation.Action.ID, updated)
		return 0, nil

	case models.MutationDelete:
		return 0, q.remote.DeleteAction(ctx, mutation.Action.ID)

	default:
		return 0, fmt.Errorf("unknown mutation kind %q", mutation.Kind)
	}
}

// refetch replaces the in-memory action set with the server's authoritative
// list, excluding identifiers whose delete succeeded during the current
// flush. The exclusion guards against a server list snapshotted before the
// delete took effect, including a delete drained in the same flush as the
// create it depended on.
func (q *syncQueue) refetch(ctx context.Context, excludeIDs map[int64]struct{}) error {
	authoritative, err := q.remote.ListActions(ctx)
	if err != nil {
		return fmt.Errorf("fetching authoritative action list failed: %w", err)
	}

	merged := make([]models.Action, 0, len(authoritative))
	for _, action := range authoritative {
		if _, deleted := excludeIDs[action.ID]; deleted {
			continue
		}
		merged = append(merged, action)
	}

	q.mu.Lock()
	q.actions = merged
	actions, listeners := q.snapshotLocked()
	q.mu.Unlock()

	q.persistActions(ctx, actions)
	q.notify(listeners, actions)
	return nil
}

// replaceAction swaps the in-memory entry identified by oldID for the given
// record. An entry removed since the mutation was issued stays removed.
func (q *syncQueue) replaceAction(ctx context.Context, oldID int64, action models.Action) {
	q.mu.Lock()
	idx := indexOfAction(q.actions, oldID)
	if idx < 0 {
		q.mu.Unlock()
		return
	}
	q.actions[idx] = action
	actions, listeners := q.snapshotLocked()
	q.mu.Unlock()

	q.persistActions(ctx, actions)
	q.notify(listeners, actions)
}

// newTempIDLocked returns a fresh temporary identifier: negative, derived
// from the current timestamp, strictly decreasing so two creates in the same
// millisecond never collide. Caller must hold q.mu.
func (q *syncQueue) newTempIDLocked() int64 {
	id := -time.Now().UnixMilli()
	if id >= q.lastTempID {
		id = q.lastTempID - 1
	}
	q.lastTempID = id
	return id
}

// snapshotLocked clones the action set and listener list for use outside the
// mutex. Caller must hold q.mu.
func (q *syncQueue) snapshotLocked() ([]models.Action, []func([]models.Action)) {
	listeners := make([]func([]models.Action), 0, len(q.listeners))
	for _, listener := range q.listeners {
		listeners = append(listeners, listener)
	}
	return slices.Clone(q.actions), listeners
}

// snapshotAllLocked additionally clones the pending-mutation log.
// Caller must hold q.mu.
func (q *syncQueue) snapshotAllLocked() ([]models.Action, []models.PendingMutation, []func([]models.Action)) {
	actions, listeners := q.snapshotLocked()
	return actions, slices.Clone(q.pending), listeners
}

func (q *syncQueue) persistActions(ctx context.Context, actions []models.Action) {
	if err := q.cache.SaveActions(ctx, actions); err != nil {
		logger.FromContext(ctx).Err(err).Msg("persisting action snapshot failed")
	}
}

func (q *syncQueue) persistMutations(ctx context.Context, mutations []models.PendingMutation) {
	if err := q.cache.SaveMutations(ctx, mutations); err != nil {
		logger.FromContext(ctx).Err(err).Msg("persisting pending mutations failed")
	}
}

func (q *syncQueue) notify(listeners []func([]models.Action), actions []models.Action) {
	for _, listener := range listeners {
		listener(actions)
	}
}

// remapActionID rewrites every mutation still referencing oldID to newID.
func remapActionID(mutations []models.PendingMutation, oldID, newID int64) {
	for i := range mutations {
		if mutations[i].Action.ID == oldID {
			mutations[i].Action.ID = newID
		}
	}
}

func indexOfAction(actions []models.Action, id int64) int {
	return slices.IndexFunc(actions, func(a models.Action) bool { return a.ID == id })
}

// patchFromAction builds a full partial-update payload from an action value.
func patchFromAction(action models.Action) models.UpdateActionRequest {
	return models.UpdateActionRequest{
		Title:        &action.Title,
		Description:  &action.Description,
		TargetCount:  &action.TargetCount,
		CurrentCount: &action.CurrentCount,
	}
}

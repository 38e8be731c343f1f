// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madi Zhakenov

package service

import (
	"context"
	"fmt"

	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/internal/store"
	"github.com/mzhakenov/go-goal-keeper/models"
)

// defaultTargetCount is applied when a create request leaves the target unset.
const defaultTargetCount = 100

// actionService is the concrete implementation of ActionService. It validates
// requests and delegates persistence to an ActionRepository.
type actionService struct {
	actionRepository store.ActionRepository
	logger           *logger.Logger
}

// NewActionService constructs an ActionService on top of the given repository.
func NewActionService(actionRepository store.ActionRepository, logger *logger.Logger) ActionService {
	return &actionService{
		actionRepository: actionRepository,
		logger:           logger,
	}
}

// CreateAction validates the request and persists a new action for userID.
// A zero TargetCount falls back to defaultTargetCount; a negative one is
// rejected with ErrInvalidDataProvided.
func (s *actionService) CreateAction(ctx context.Context, userID int64, req models.CreateActionRequest) (models.Action, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.TargetCount < 0 {
		log.Error().Int64("userID", userID).Str("title", req.Title).Msg("invalid action data provided")
		return models.Action{}, ErrInvalidDataProvided
	}

	targetCount := req.TargetCount
	if targetCount == 0 {
		targetCount = defaultTargetCount
	}

	action := models.Action{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TargetCount: targetCount,
	}

	created, err := s.actionRepository.CreateAction(ctx, action)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("action creation ended with error")
		return models.Action{}, fmt.Errorf("action creation ended with error: %w", err)
	}

	return created, nil
}

// ListActions returns all actions of userID in creation order.
func (s *actionService) ListActions(ctx context.Context, userID int64) ([]models.Action, error) {
	log := logger.FromContext(ctx)

	actions, err := s.actionRepository.ListActions(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing actions ended with error")
		return nil, fmt.Errorf("listing actions ended with error: %w", err)
	}

	return actions, nil
}

// UpdateAction applies the non-nil fields of patch to the action.
func (s *actionService) UpdateAction(ctx context.Context, id, userID int64, patch models.UpdateActionRequest) (models.Action, error) {
	log := logger.FromContext(ctx)

	if patch.Title != nil && *patch.Title == "" {
		log.Error().Int64("id", id).Int64("userID", userID).Msg("empty title in action update")
		return models.Action{}, ErrInvalidDataProvided
	}
	if patch.TargetCount != nil && *patch.TargetCount <= 0 {
		log.Error().Int64("id", id).Int64("userID", userID).Msg("non-positive target count in action update")
		return models.Action{}, ErrInvalidDataProvided
	}

	updated, err := s.actionRepository.UpdateAction(ctx, id, userID, patch)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("userID", userID).Msg("action update ended with error")
		return models.Action{}, fmt.Errorf("action update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteAction removes the action together with its progress events.
func (s *actionService) DeleteAction(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.actionRepository.DeleteAction(ctx, id, userID); err != nil {
		log.Err(err).Int64("id", id).Int64("userID", userID).Msg("action deletion ended with error")
		return fmt.Errorf("action deletion ended with error: %w", err)
	}

	return nil
}

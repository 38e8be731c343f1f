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

// progressService is the concrete implementation of ProgressService.
// Clamping and the completed-flag transitions live in the repository
// transaction; this layer only validates input.
type progressService struct {
	progressRepository store.ProgressRepository
	logger             *logger.Logger
}

// NewProgressService constructs a ProgressService on top of the given repository.
func NewProgressService(progressRepository store.ProgressRepository, logger *logger.Logger) ProgressService {
	return &progressService{
		progressRepository: progressRepository,
		logger:             logger,
	}
}

// Record applies a positive progress delta to the action. The delta is
// clamped in storage so the current count never exceeds the target.
func (s *progressService) Record(ctx context.Context, userID, actionID int64, count int) (models.ProgressResult, error) {
	log := logger.FromContext(ctx)

	if count <= 0 {
		log.Error().Int64("actionID", actionID).Int("count", count).Msg("non-positive progress count provided")
		return models.ProgressResult{}, ErrInvalidDataProvided
	}

	result, err := s.progressRepository.Record(ctx, userID, actionID, count)
	if err != nil {
		log.Err(err).Int64("actionID", actionID).Int("count", count).Msg("recording progress ended with error")
		return models.ProgressResult{}, fmt.Errorf("recording progress ended with error: %w", err)
	}

	return result, nil
}

// Decrement undoes one unit of progress, reopening the action if it was
// completed.
func (s *progressService) Decrement(ctx context.Context, userID, actionID int64) (models.ProgressResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.progressRepository.Decrement(ctx, userID, actionID)
	if err != nil {
		log.Err(err).Int64("actionID", actionID).Msg("decrementing progress ended with error")
		return models.ProgressResult{}, fmt.Errorf("decrementing progress ended with error: %w", err)
	}

	return result, nil
}

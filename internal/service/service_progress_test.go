// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madi Zhakenov

package service

import (
	"context"
	"testing"

	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/internal/mock"
	"github.com/mzhakenov/go-goal-keeper/internal/store"
	"github.com/mzhakenov/go-goal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProgressService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProgressRepository(ctrl)
	svc := NewProgressService(repo, logger.Nop())
	ctx := context.Background()

	result := models.ProgressResult{
		Progress: models.Progress{ID: 1, ActionID: 5, Count: 3},
		Action:   models.Action{ID: 5, CurrentCount: 13, TargetCount: 30},
	}
	repo.EXPECT().Record(ctx, int64(42), int64(5), 3).Return(result, nil)

	got, err := svc.Record(ctx, 42, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestProgressService_Record_NonPositiveCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewProgressService(mock.NewMockProgressRepository(ctrl), logger.Nop())
	ctx := context.Background()

	_, err := svc.Record(ctx, 42, 5, 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Record(ctx, 42, 5, -1)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProgressService_Record_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProgressRepository(ctrl)
	svc := NewProgressService(repo, logger.Nop())
	ctx := context.Background()

	for _, sentinel := range []error{store.ErrActionNotFound, store.ErrActionCompleted, store.ErrAlreadyAtMaximum} {
		repo.EXPECT().Record(ctx, int64(42), int64(5), 1).Return(models.ProgressResult{}, sentinel)

		_, err := svc.Record(ctx, 42, 5, 1)
		require.ErrorIs(t, err, sentinel)
	}
}

func TestProgressService_Decrement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProgressRepository(ctrl)
	svc := NewProgressService(repo, logger.Nop())
	ctx := context.Background()

	result := models.ProgressResult{
		Progress: models.Progress{ID: 2, ActionID: 5, Count: -1},
		Action:   models.Action{ID: 5, CurrentCount: 29, TargetCount: 30},
	}
	repo.EXPECT().Decrement(ctx, int64(42), int64(5)).Return(result, nil)

	got, err := svc.Decrement(ctx, 42, 5)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestProgressService_Decrement_AtMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProgressRepository(ctrl)
	svc := NewProgressService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().Decrement(ctx, int64(42), int64(5)).Return(models.ProgressResult{}, store.ErrAlreadyAtMinimum)

	_, err := svc.Decrement(ctx, 42, 5)
	require.ErrorIs(t, err, store.ErrAlreadyAtMinimum)
}

package service

import (
	"context"

	"github.com/mzhakenov/go-goal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification and JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ActionService manages a user's actions.
type ActionService interface {
	CreateAction(ctx context.Context, userID int64, req models.CreateActionRequest) (models.Action, error)
	ListActions(ctx context.Context, userID int64) ([]models.Action, error)
	UpdateAction(ctx context.Context, id, userID int64, patch models.UpdateActionRequest) (models.Action, error)
	DeleteAction(ctx context.Context, id, userID int64) error
}

// ProgressService records progress against actions.
type ProgressService interface {
	Record(ctx context.Context, userID, actionID int64, count int) (models.ProgressResult, error)
	Decrement(ctx context.Context, userID, actionID int64) (models.ProgressResult, error)
}

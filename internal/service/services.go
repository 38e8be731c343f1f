package service

import (
	"github.com/mzhakenov/go-goal-keeper/internal/config"
	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/internal/store"
)

// Services aggregates all server-side services.
type Services struct {
	AuthService     AuthService
	ActionService   ActionService
	ProgressService ProgressService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ActionService:   NewActionService(storages.ActionRepository, logger),
		ProgressService: NewProgressService(storages.ProgressRepository, logger),
	}
}

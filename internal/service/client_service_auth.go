package service

import (
	"context"
	"fmt"

	"github.com/mzhakenov/go-goal-keeper/internal/adapter"
	"github.com/mzhakenov/go-goal-keeper/internal/logger"
	"github.com/mzhakenov/go-goal-keeper/models"
)

// clientAuthService registers and authenticates the user against the server.
// The adapter stores the issued bearer token itself, so a successful call
// leaves all subsequent requests authenticated.
type clientAuthService struct {
	remote adapter.ActionClient
	logger *logger.Logger
}

// NewClientAuthService constructs a ClientAuthService over the given adapter.
func NewClientAuthService(remote adapter.ActionClient, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		remote: remote,
		logger: logger,
	}
}

// Register implements ClientAuthService.
func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}

	if _, err := a.remote.Signup(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("signup failed")
		return fmt.Errorf("signup failed: %w", err)
	}

	return nil
}

// Login implements ClientAuthService.
func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}

	if _, err := a.remote.Login(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("login failed")
		return fmt.Errorf("login failed: %w", err)
	}

	return nil
}

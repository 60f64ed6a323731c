package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/balamt/bagmytrip/domain"
)

const (
	demoEmail    = "demo@bagmytrip.com"
	demoPassword = "demo123"
)

// SeedDemoUser provisions the demonstration account. It is an opt-in
// fixture guarded by configuration, not a default behavior, and it is
// idempotent across restarts.
func SeedDemoUser(ctx context.Context, userRepo domain.UserRepository, passwordSvc domain.PasswordService, logger *zap.Logger) error {
	_, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("failed to check demo user: %w", err)
	}

	hash, err := passwordSvc.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &domain.User{
		Name:         "Demo User",
		Email:        demoEmail,
		PasswordHash: hash,
		Preferences: map[string]any{
			"travelStyle": "comfortable",
			"budget":      "moderate",
			"interests":   []string{"culture", "food", "sightseeing"},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	logger.Info("demo user created", zap.String("email", demoEmail))
	return nil
}

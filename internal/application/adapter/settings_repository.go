// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for user settings persistence.
type SettingsRepository interface {
	// FindByUser retrieves the settings row for a user, nil when absent.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Settings, error)

	// Save inserts or replaces the settings row for a user.
	Save(ctx context.Context, settings *entity.Settings) error
}

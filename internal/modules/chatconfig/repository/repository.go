package repository

import (
	"context"

	"github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/domain"
)

// Repository defines the interface for per-chat settings persistence
type Repository interface {
	// GetConfig returns the stored config and whether one exists
	GetConfig(ctx context.Context, chatID int64) (*domain.ModerationConfig, bool, error)
	// UpdateConfig loads the config (or defaults), applies fn and stores the
	// result in one transaction
	UpdateConfig(ctx context.Context, chatID int64, fn func(cfg *domain.ModerationConfig) error) (*domain.ModerationConfig, error)
}

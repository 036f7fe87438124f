package repository

import (
	"context"

	"github.com/reshetovitsme/chat-moderator/internal/modules/exemption/domain"
)

// Repository defines the interface for exemption persistence
type Repository interface {
	ListByChat(ctx context.Context, chatID int64) ([]domain.Exemption, error)
	// Add reports false when an identical exemption already exists
	Add(ctx context.Context, exemption *domain.Exemption) (bool, error)
	// Remove reports false when nothing matched
	Remove(ctx context.Context, chatID int64, lockType *string, typ domain.ExemptionType, value string) (bool, error)
}

package repository

import (
	"context"

	"github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/domain"
)

// Repository defines the interface for blocklist persistence. A nil chatID
// addresses global patterns.
type Repository interface {
	// ListCandidates returns the chat's patterns and the global ones, highest
	// severity first
	ListCandidates(ctx context.Context, chatID int64) ([]domain.Pattern, error)
	List(ctx context.Context, chatID *int64) ([]domain.Pattern, error)
	// Create reports false when the scope already has the pattern
	Create(ctx context.Context, pattern *domain.Pattern) (bool, error)
	// Delete reports false when nothing matched
	Delete(ctx context.Context, chatID *int64, pattern string) (bool, error)
}

package repository

import (
	"context"
	"time"

	"github.com/reshetovitsme/chat-moderator/internal/modules/warning/domain"
)

// Repository defines the interface for warning persistence
type Repository interface {
	// IssueAndCount inserts warning and returns the user's active count before
	// and after the insert, read in the same transaction
	IssueAndCount(ctx context.Context, warning *domain.Warning, now time.Time) (before, after int64, err error)
	CountActive(ctx context.Context, chatID, userID int64, now time.Time) (int64, error)
	ListActive(ctx context.Context, chatID, userID int64, now time.Time) ([]domain.Warning, error)
	// DeleteActive hard-deletes the user's active warnings and returns how many
	DeleteActive(ctx context.Context, chatID, userID int64, now time.Time) (int64, error)
}

package repository

import (
	"context"

	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
)

// Repository defines the interface for lock and allowlist persistence
type Repository interface {
	// GetLocks returns every stored lock of the chat. Malformed stored state
	// yields an empty map rather than an error.
	GetLocks(ctx context.Context, chatID int64) (map[domain.LockType]domain.LockConfig, error)
	// UpdateLocks applies fn to the chat's locks and stores the result atomically
	UpdateLocks(ctx context.Context, chatID int64, fn func(locks map[domain.LockType]domain.LockConfig)) error

	ListAllowlist(ctx context.Context, chatID int64) ([]domain.AllowlistEntry, error)
	// AddAllowlist reports false when the entry already exists
	AddAllowlist(ctx context.Context, entry *domain.AllowlistEntry) (bool, error)
	// RemoveAllowlist reports false when no entry matched
	RemoveAllowlist(ctx context.Context, chatID int64, typ domain.AllowlistType, pattern string) (bool, error)
}

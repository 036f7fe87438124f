package repository

import (
	"context"

	"github.com/reshetovitsme/chat-moderator/internal/modules/admincache/domain"
)

// Store holds admin cache entries. Implementations must be safe for
// concurrent use and may drop entries at any time.
type Store interface {
	Get(ctx context.Context, chatID, userID int64) (*domain.Entry, bool, error)
	Set(ctx context.Context, entry domain.Entry) error
	Delete(ctx context.Context, chatID, userID int64) error
}

package repository

import (
	"context"

	"github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
)

// Repository defines the interface for the append-only punishment log
type Repository interface {
	Append(ctx context.Context, record *domain.Record) error
	// ListRecent returns the chat's newest records first
	ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Record, error)
}

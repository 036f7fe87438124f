package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	"github.com/samber/oops"
	"gorm.io/gorm"
)

// GormStorage implements Repository on top of gorm
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage creates a gorm-backed punishment log
func NewGormStorage(db *gorm.DB) Repository {
	return &GormStorage{db: db}
}

func (s *GormStorage) Append(ctx context.Context, record *domain.Record) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return oops.
			With("chat_id", record.ChatID, "user_id", record.UserID, "action", record.Action).
			With("context", "failed to append punishment record").
			Wrap(err)
	}
	return nil
}

func (s *GormStorage) ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		limit = 50
	}

	var records []domain.Record
	err := s.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to list punishment records").Wrap(err)
	}
	return records, nil
}

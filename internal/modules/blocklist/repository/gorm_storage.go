package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/domain"
	"github.com/samber/oops"
	"gorm.io/gorm"
)

// GormStorage implements Repository on top of gorm
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage creates a gorm-backed blocklist repository
func NewGormStorage(db *gorm.DB) Repository {
	return &GormStorage{db: db}
}

func (s *GormStorage) ListCandidates(ctx context.Context, chatID int64) ([]domain.Pattern, error) {
	var patterns []domain.Pattern
	err := s.db.WithContext(ctx).
		Where("chat_id = ? OR chat_id IS NULL", chatID).
		Order("severity DESC, id").
		Find(&patterns).Error
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to load blocklist").Wrap(err)
	}
	return patterns, nil
}

func (s *GormStorage) List(ctx context.Context, chatID *int64) ([]domain.Pattern, error) {
	var patterns []domain.Pattern
	err := scoped(s.db.WithContext(ctx), chatID).
		Order("severity DESC, pattern").
		Find(&patterns).Error
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to list blocklist").Wrap(err)
	}
	return patterns, nil
}

// Create checks for duplicates inside the transaction because SQL treats
// NULL chat ids of global patterns as distinct
func (s *GormStorage) Create(ctx context.Context, pattern *domain.Pattern) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := scoped(tx.Model(&domain.Pattern{}), pattern.ChatID).
			Where("pattern = ?", pattern.Pattern).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if pattern.ID == "" {
			pattern.ID = uuid.NewString()
		}
		if pattern.CreatedAt.IsZero() {
			pattern.CreatedAt = time.Now()
		}
		if err := tx.Create(pattern).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, oops.With("chat_id", pattern.ChatID, "pattern", pattern.Pattern, "context", "failed to create blocklist pattern").Wrap(err)
	}
	return created, nil
}

func (s *GormStorage) Delete(ctx context.Context, chatID *int64, pattern string) (bool, error) {
	res := scoped(s.db.WithContext(ctx), chatID).
		Where("pattern = ?", pattern).
		Delete(&domain.Pattern{})
	if res.Error != nil {
		return false, oops.With("chat_id", chatID, "pattern", pattern, "context", "failed to delete blocklist pattern").Wrap(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func scoped(db *gorm.DB, chatID *int64) *gorm.DB {
	if chatID == nil {
		return db.Where("chat_id IS NULL")
	}
	return db.Where("chat_id = ?", *chatID)
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/reshetovitsme/chat-moderator/internal/modules/warning/domain"
	"github.com/samber/oops"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage implements Repository on top of gorm
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage creates a gorm-backed warning repository
func NewGormStorage(db *gorm.DB) Repository {
	return &GormStorage{db: db}
}

// IssueAndCount locks the user's active rows (FOR UPDATE on MySQL; SQLite
// serializes writers on its own) so concurrent issuers see consistent counts
func (s *GormStorage) IssueAndCount(ctx context.Context, warning *domain.Warning, now time.Time) (int64, int64, error) {
	if warning.ID == "" {
		warning.ID = uuid.NewString()
	}
	if warning.CreatedAt.IsZero() {
		warning.CreatedAt = now
	}

	var before, after int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := active(tx.Clauses(clause.Locking{Strength: "UPDATE"}).Model(&domain.Warning{}), warning.ChatID, warning.UserID, now).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		before = int64(len(ids))

		if err := tx.Create(warning).Error; err != nil {
			return err
		}

		return active(tx.Model(&domain.Warning{}), warning.ChatID, warning.UserID, now).Count(&after).Error
	})
	if err != nil {
		return 0, 0, oops.
			With("chat_id", warning.ChatID, "user_id", warning.UserID).
			With("context", "failed to issue warning").
			Wrap(err)
	}
	return before, after, nil
}

func (s *GormStorage) CountActive(ctx context.Context, chatID, userID int64, now time.Time) (int64, error) {
	var count int64
	if err := active(s.db.WithContext(ctx).Model(&domain.Warning{}), chatID, userID, now).Count(&count).Error; err != nil {
		return 0, oops.With("chat_id", chatID, "user_id", userID, "context", "failed to count warnings").Wrap(err)
	}
	return count, nil
}

func (s *GormStorage) ListActive(ctx context.Context, chatID, userID int64, now time.Time) ([]domain.Warning, error) {
	var warnings []domain.Warning
	if err := active(s.db.WithContext(ctx), chatID, userID, now).Order("created_at").Find(&warnings).Error; err != nil {
		return nil, oops.With("chat_id", chatID, "user_id", userID, "context", "failed to list warnings").Wrap(err)
	}
	return warnings, nil
}

func (s *GormStorage) DeleteActive(ctx context.Context, chatID, userID int64, now time.Time) (int64, error) {
	res := active(s.db.WithContext(ctx), chatID, userID, now).Delete(&domain.Warning{})
	if res.Error != nil {
		return 0, oops.With("chat_id", chatID, "user_id", userID, "context", "failed to remove warnings").Wrap(res.Error)
	}
	return res.RowsAffected, nil
}

func active(db *gorm.DB, chatID, userID int64, now time.Time) *gorm.DB {
	return db.Where("chat_id = ? AND user_id = ? AND expires_at > ?", chatID, userID, now)
}

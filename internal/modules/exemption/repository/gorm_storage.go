package repository

import (
	"context"
	"time"

	"github.com/reshetovitsme/chat-moderator/internal/modules/exemption/domain"
	"github.com/samber/oops"
	"gorm.io/gorm"
)

// GormStorage implements Repository on top of gorm
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage creates a gorm-backed exemption repository
func NewGormStorage(db *gorm.DB) Repository {
	return &GormStorage{db: db}
}

func (s *GormStorage) ListByChat(ctx context.Context, chatID int64) ([]domain.Exemption, error) {
	var exemptions []domain.Exemption
	if err := s.db.WithContext(ctx).Where("chat_id = ?", chatID).Order("id").Find(&exemptions).Error; err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to list exemptions").Wrap(err)
	}
	return exemptions, nil
}

// Add checks for an existing row inside the transaction because the unique
// index treats NULL lock types as distinct
func (s *GormStorage) Add(ctx context.Context, exemption *domain.Exemption) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := matching(tx.Model(&domain.Exemption{}), exemption.ChatID, exemption.LockType, exemption.ExemptionType, exemption.Value).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if exemption.CreatedAt.IsZero() {
			exemption.CreatedAt = time.Now()
		}
		if err := tx.Create(exemption).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, oops.
			With("chat_id", exemption.ChatID, "type", exemption.ExemptionType, "value", exemption.Value).
			With("context", "failed to add exemption").
			Wrap(err)
	}
	return created, nil
}

func (s *GormStorage) Remove(ctx context.Context, chatID int64, lockType *string, typ domain.ExemptionType, value string) (bool, error) {
	res := matching(s.db.WithContext(ctx), chatID, lockType, typ, value).Delete(&domain.Exemption{})
	if res.Error != nil {
		return false, oops.With("chat_id", chatID, "type", typ, "value", value, "context", "failed to remove exemption").Wrap(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func matching(db *gorm.DB, chatID int64, lockType *string, typ domain.ExemptionType, value string) *gorm.DB {
	q := db.Where("chat_id = ? AND exemption_type = ? AND value = ?", chatID, typ, value)
	if lockType == nil {
		return q.Where("lock_type IS NULL")
	}
	return q.Where("lock_type = ?", *lockType)
}

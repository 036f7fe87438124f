package repository

import (
	"context"
	"errors"

	"github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/domain"
	"github.com/samber/oops"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage implements Repository on top of gorm
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage creates a gorm-backed settings repository
func NewGormStorage(db *gorm.DB) Repository {
	return &GormStorage{db: db}
}

func (s *GormStorage) GetConfig(ctx context.Context, chatID int64) (*domain.ModerationConfig, bool, error) {
	cfg, found, err := getConfig(s.db.WithContext(ctx), chatID)
	if err != nil {
		return nil, false, oops.With("chat_id", chatID, "context", "failed to read moderation config").Wrap(err)
	}
	return cfg, found, nil
}

func (s *GormStorage) UpdateConfig(ctx context.Context, chatID int64, fn func(cfg *domain.ModerationConfig) error) (*domain.ModerationConfig, error) {
	var out *domain.ModerationConfig
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cfg, found, err := getConfig(tx.Clauses(clause.Locking{Strength: "UPDATE"}), chatID)
		if err != nil {
			return err
		}
		if !found {
			def := domain.DefaultConfig(chatID)
			cfg = &def
		}

		if err := fn(cfg); err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(cfg).Error; err != nil {
			return err
		}
		out = cfg
		return nil
	})
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to update moderation config").Wrap(err)
	}
	return out, nil
}

func getConfig(db *gorm.DB, chatID int64) (*domain.ModerationConfig, bool, error) {
	var cfg domain.ModerationConfig
	err := db.Where("chat_id = ?", chatID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &cfg, true, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	"github.com/samber/oops"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage implements Repository on top of gorm
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage creates a gorm-backed lock repository
func NewGormStorage(db *gorm.DB) Repository {
	return &GormStorage{db: db}
}

func (s *GormStorage) GetLocks(ctx context.Context, chatID int64) (map[domain.LockType]domain.LockConfig, error) {
	row, err := getRow(s.db.WithContext(ctx), chatID)
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to read locks").Wrap(err)
	}
	if row == nil {
		return map[domain.LockType]domain.LockConfig{}, nil
	}
	return decodeLocks(chatID, row.LocksJSON), nil
}

func (s *GormStorage) UpdateLocks(ctx context.Context, chatID int64, fn func(locks map[domain.LockType]domain.LockConfig)) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := getRow(tx.Clauses(clause.Locking{Strength: "UPDATE"}), chatID)
		if err != nil {
			return err
		}

		locks := map[domain.LockType]domain.LockConfig{}
		if row != nil {
			locks = decodeLocks(chatID, row.LocksJSON)
		}
		fn(locks)

		raw, err := encodeLocks(locks)
		if err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&domain.ChatLocks{
			ChatID:    chatID,
			LocksJSON: raw,
			UpdatedAt: time.Now(),
		}).Error
	})
	if err != nil {
		return oops.With("chat_id", chatID, "context", "failed to update locks").Wrap(err)
	}
	return nil
}

func (s *GormStorage) ListAllowlist(ctx context.Context, chatID int64) ([]domain.AllowlistEntry, error) {
	var entries []domain.AllowlistEntry
	err := s.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("allowlist_type, pattern").
		Find(&entries).Error
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to list allowlist").Wrap(err)
	}
	return entries, nil
}

func (s *GormStorage) AddAllowlist(ctx context.Context, entry *domain.AllowlistEntry) (bool, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if res.Error != nil {
		return false, oops.
			With("chat_id", entry.ChatID, "type", entry.AllowlistType, "pattern", entry.Pattern).
			With("context", "failed to add allowlist entry").
			Wrap(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStorage) RemoveAllowlist(ctx context.Context, chatID int64, typ domain.AllowlistType, pattern string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("chat_id = ? AND allowlist_type = ? AND pattern = ?", chatID, typ, pattern).
		Delete(&domain.AllowlistEntry{})
	if res.Error != nil {
		return false, oops.With("chat_id", chatID, "type", typ, "pattern", pattern, "context", "failed to remove allowlist entry").Wrap(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func getRow(db *gorm.DB, chatID int64) (*domain.ChatLocks, error) {
	var row domain.ChatLocks
	err := db.Where("chat_id = ?", chatID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// decodeLocks parses the stored document. A malformed document degrades to
// no locks; unknown lock names are skipped.
func decodeLocks(chatID int64, raw string) map[domain.LockType]domain.LockConfig {
	locks := map[domain.LockType]domain.LockConfig{}
	if raw == "" {
		return locks
	}

	var stored map[string]domain.LockConfig
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		slog.Error("Malformed lock configuration, treating chat as unlocked", "chat_id", chatID, "error", err)
		return locks
	}

	for name, cfg := range stored {
		lockType, err := domain.ParseLockType(name)
		if err != nil {
			slog.Warn("Skipping unknown lock type", "chat_id", chatID, "lock_type", name)
			continue
		}
		locks[lockType] = cfg
	}
	return locks
}

func encodeLocks(locks map[domain.LockType]domain.LockConfig) (string, error) {
	stored := make(map[string]domain.LockConfig, len(locks))
	for lockType, cfg := range locks {
		stored[lockType.String()] = cfg
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

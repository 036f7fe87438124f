package domain

import (
	"time"

	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
)

const (
	DefaultMaxWarnings     = 3
	DefaultWarningTTLHours = 24
)

// ModerationConfig holds the per-chat enforcement settings. A chat without a
// stored row behaves as DefaultConfig.
type ModerationConfig struct {
	ChatID                   int64                     `json:"chat_id"                    gorm:"primaryKey;autoIncrement:false"`
	MaxWarnings              int                       `json:"max_warnings"               gorm:"not null"`
	WarningTTLHours          int                       `json:"warning_ttl_hours"          gorm:"not null"`
	ThresholdAction          punishment.PunishmentType `json:"threshold_action"           gorm:"type:varchar(16);not null"`
	ThresholdDurationMinutes *int                      `json:"threshold_duration_minutes,omitempty"`
	DefaultBlocklistAction   punishment.PunishmentType `json:"default_blocklist_action"   gorm:"type:varchar(16);not null"`
	LogChannelID             *int64                    `json:"log_channel_id,omitempty"`
	LockWarns                bool                      `json:"lock_warns"                 gorm:"not null"`
	UpdatedAt                time.Time                 `json:"updated_at"`
}

// TableName returns the database table name for ModerationConfig.
func (ModerationConfig) TableName() string { return "moderation_configs" }

// DefaultConfig returns the settings applied to chats that never changed them
func DefaultConfig(chatID int64) ModerationConfig {
	return ModerationConfig{
		ChatID:                 chatID,
		MaxWarnings:            DefaultMaxWarnings,
		WarningTTLHours:        DefaultWarningTTLHours,
		ThresholdAction:        punishment.PunishmentTypeMute,
		DefaultBlocklistAction: punishment.PunishmentTypeWarn,
		LockWarns:              true,
	}
}

// WarningTTL is the lifetime of a warning issued under this config
func (c ModerationConfig) WarningTTL() time.Duration {
	return time.Duration(c.WarningTTLHours) * time.Hour
}

// ThresholdDuration is nil when the threshold action has no time limit
func (c ModerationConfig) ThresholdDuration() *time.Duration {
	if c.ThresholdDurationMinutes == nil || *c.ThresholdDurationMinutes <= 0 {
		return nil
	}
	d := time.Duration(*c.ThresholdDurationMinutes) * time.Minute
	return &d
}

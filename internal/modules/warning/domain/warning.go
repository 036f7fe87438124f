package domain

import (
	"time"

	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
)

// Warning counts toward a user's threshold until it expires. Expired rows
// are ignored, never purged.
type Warning struct {
	ID         string    `json:"id"           gorm:"type:char(36);primaryKey"`
	ChatID     int64     `json:"chat_id"      gorm:"not null;index:idx_warning_user,priority:1"`
	UserID     int64     `json:"user_id"      gorm:"not null;index:idx_warning_user,priority:2"`
	IssuedByID int64     `json:"issued_by_id" gorm:"not null"`
	Reason     *string   `json:"reason,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"   gorm:"not null;index:idx_warning_user,priority:3"`
}

// TableName returns the database table name for Warning.
func (Warning) TableName() string { return "warnings" }

// Active reports whether the warning still counts at now
func (w Warning) Active(now time.Time) bool {
	return w.ExpiresAt.After(now)
}

// WarningWithThresholdResult is the outcome of issuing one warning
type WarningWithThresholdResult struct {
	Warning     Warning
	ActiveCount int64
	MaxWarnings int
	// ThresholdTriggered is set on the warning that brings the active count
	// up to MaxWarnings
	ThresholdTriggered       bool
	ThresholdAction          *punishment.PunishmentType
	ThresholdDurationMinutes *int
}

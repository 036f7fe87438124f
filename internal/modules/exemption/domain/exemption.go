package domain

import "time"

// Exemption excuses a user or bot from enforcement in a chat. A nil LockType
// applies to every lock.
type Exemption struct {
	ID            uint          `json:"id"        gorm:"primaryKey"`
	ChatID        int64         `json:"chat_id"   gorm:"not null;uniqueIndex:idx_exemption_unique,priority:1"`
	LockType      *string       `json:"lock_type,omitempty" gorm:"type:varchar(32);uniqueIndex:idx_exemption_unique,priority:2"`
	ExemptionType ExemptionType `json:"type"      gorm:"type:varchar(8);not null;uniqueIndex:idx_exemption_unique,priority:3"`
	Value         string        `json:"value"     gorm:"type:varchar(255);not null;uniqueIndex:idx_exemption_unique,priority:4"`
	CreatedAt     time.Time     `json:"created_at"`
}

// TableName returns the database table name for Exemption.
func (Exemption) TableName() string { return "exemptions" }

// IsGlobal reports whether the exemption covers all locks
func (e Exemption) IsGlobal() bool {
	return e.LockType == nil
}

package domain

import "time"

// Severity orders punishment types for display only
func (x PunishmentType) Severity() int {
	switch x {
	case PunishmentTypeWarn:
		return 1
	case PunishmentTypeMute:
		return 2
	case PunishmentTypeKick:
		return 3
	case PunishmentTypeBan:
		return 4
	default:
		return 0
	}
}

// Action maps a punishment onto the record action documenting it
func (x PunishmentType) Action() ActionType {
	return ActionType(x)
}

// Record is an append-only audit row written for every action reaching the
// executor, successful or not.
type Record struct {
	ID              string     `json:"id"               gorm:"type:char(36);primaryKey"`
	ChatID          int64      `json:"chat_id"          gorm:"not null;index:idx_punishment_chat_created,priority:1"`
	UserID          int64      `json:"user_id"          gorm:"not null;index"`
	IssuedByID      int64      `json:"issued_by_id"     gorm:"not null"`
	Action          ActionType `json:"action"           gorm:"type:varchar(16);not null"`
	DurationSeconds *int64     `json:"duration_seconds,omitempty"`
	Reason          *string    `json:"reason,omitempty" gorm:"type:text"`
	Source          Source     `json:"source"           gorm:"type:varchar(16);not null"`
	MessageText     *string    `json:"message_text,omitempty" gorm:"type:text"`
	Success         bool       `json:"success"          gorm:"not null"`
	CreatedAt       time.Time  `json:"created_at"       gorm:"index:idx_punishment_chat_created,priority:2"`
}

// TableName returns the database table name for Record.
func (Record) TableName() string { return "punishment_records" }

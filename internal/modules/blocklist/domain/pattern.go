package domain

import (
	"time"

	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
)

// MaxWildcards bounds the cost of evaluating a wildcard pattern
const MaxWildcards = 5

// Pattern is a stored blocklist rule. A nil ChatID marks a global pattern
// applied in every chat.
type Pattern struct {
	ID                    string                     `json:"id"         gorm:"type:char(36);primaryKey"`
	ChatID                *int64                     `json:"chat_id"    gorm:"uniqueIndex:idx_blocklist_unique,priority:1"`
	Pattern               string                     `json:"pattern"    gorm:"type:varchar(255);not null;uniqueIndex:idx_blocklist_unique,priority:2"`
	MatchType             MatchType                  `json:"match_type" gorm:"type:varchar(16);not null"`
	Action                *punishment.PunishmentType `json:"action,omitempty" gorm:"type:varchar(16)"`
	ActionDurationMinutes *int                       `json:"action_duration_minutes,omitempty"`
	Severity              int                        `json:"severity"   gorm:"not null;index"`
	CreatedBy             int64                      `json:"created_by"`
	CreatedAt             time.Time                  `json:"created_at"`
}

// TableName returns the database table name for Pattern.
func (Pattern) TableName() string { return "blocklist_patterns" }

// IsGlobal reports whether the pattern applies to every chat
func (p Pattern) IsGlobal() bool {
	return p.ChatID == nil
}

// Match is the highest-severity pattern found in a message. A nil Action
// means the chat's default blocklist action applies.
type Match struct {
	PatternID       string
	Pattern         string
	Action          *punishment.PunishmentType
	DurationMinutes *int
	Severity        int
}

package domain

import (
	blocklist "github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/domain"
	lock "github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	warning "github.com/reshetovitsme/chat-moderator/internal/modules/warning/domain"
)

// Outcome summarizes what the pipeline did with one message
type Outcome struct {
	Skipped   bool
	Exempt    bool
	Violation *lock.Violation
	Match     *blocklist.Match
	Deleted   bool
	Warning   *warning.WarningWithThresholdResult
	// Action is the punishment applied to the sender, if any
	Action *punishment.PunishmentType
	Failed bool
}

// Label is the metric label for the outcome
func (o Outcome) Label() string {
	switch {
	case o.Failed:
		return "error"
	case o.Skipped, o.Exempt:
		return "exempt"
	case o.Violation != nil:
		return "lock_violation"
	case o.Match != nil:
		return "blocklist_match"
	default:
		return "clean"
	}
}

package domain

import "time"

// Entry is one audit event destined for a chat's log channel
type Entry struct {
	ChatID    int64             `json:"chat_id"`
	Action    ActionType        `json:"action"`
	ActorID   int64             `json:"actor_id"`
	TargetID  *int64            `json:"target_id,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Key identifies the coalescing slot of a debounced entry
type Key struct {
	ChatID int64
	Action ActionType
}

func (e Entry) Key() Key {
	return Key{ChatID: e.ChatID, Action: e.Action}
}

// IsDebounced reports whether entries of this type come from rapid,
// text-edited settings changes and are coalesced before sending.
func (x ActionType) IsDebounced() bool {
	switch x {
	case ActionTypeMaxWarnings, ActionTypeWarningTtl, ActionTypeThresholdAction, ActionTypeBlocklistAction:
		return true
	default:
		return false
	}
}

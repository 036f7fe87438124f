package detector

import (
	"unicode"

	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
)

var entityLocks = map[domain.LockType]message.EntityKind{
	domain.LockTypeHashtag:     message.EntityKindHashtag,
	domain.LockTypeCashtag:     message.EntityKindCashtag,
	domain.LockTypeEmail:       message.EntityKindEmail,
	domain.LockTypePhone:       message.EntityKindPhoneNumber,
	domain.LockTypeSpoiler:     message.EntityKindSpoiler,
	domain.LockTypeCustomemoji: message.EntityKindCustomEmoji,
}

// EntityDetectors returns the detectors that fire on the mere presence of an
// entity kind
func EntityDetectors() []Detector {
	detectors := make([]Detector, 0, len(entityLocks))
	for lockType, kind := range entityLocks {
		detectors = append(detectors, Entity(lockType, kind))
	}
	return detectors
}

// Entity detects messages containing at least one span of the given kinds
func Entity(lockType domain.LockType, kinds ...message.EntityKind) Detector {
	return detectorFunc{
		lockType: lockType,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			return len(msg.EntitiesOf(kinds...)) > 0
		},
	}
}

// Mention detects @mentions and mentions of users without a username. There
// is no allowlist for mentions.
func Mention() Detector {
	return Entity(domain.LockTypeMention, message.EntityKindMention, message.EntityKindTextMention)
}

// Commands detects bot commands missing from the chat's command allowlist
func Commands() Detector {
	return detectorFunc{
		lockType: domain.LockTypeCommands,
		detect: func(msg *message.Message, dc *domain.DetectionContext) bool {
			for _, e := range msg.EntitiesOf(message.EntityKindBotCommand) {
				if dc == nil {
					return true
				}
				if _, ok := dc.AllowlistedCommands[domain.NormalizeCommand(e.Value)]; !ok {
					return true
				}
			}
			return false
		},
	}
}

var rtlScripts = []*unicode.RangeTable{
	unicode.Arabic,
	unicode.Hebrew,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Nko,
	unicode.Samaritan,
	unicode.Mandaic,
}

// RTL detects right-to-left script or explicit RTL control characters
func RTL() Detector {
	return detectorFunc{
		lockType: domain.LockTypeRtl,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			for _, r := range msg.Body() {
				switch r {
				case '\u200f', '\u202b', '\u202e', '\u2067':
					return true
				}
				if unicode.In(r, rtlScripts...) {
					return true
				}
			}
			return false
		},
	}
}

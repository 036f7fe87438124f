package detector

import (
	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	"github.com/samber/lo"
)

var contentLocks = map[domain.LockType]message.ContentType{
	domain.LockTypePhoto:     message.ContentTypePhoto,
	domain.LockTypeVideo:     message.ContentTypeVideo,
	domain.LockTypeAudio:     message.ContentTypeAudio,
	domain.LockTypeVoice:     message.ContentTypeVoice,
	domain.LockTypeDocument:  message.ContentTypeDocument,
	domain.LockTypeSticker:   message.ContentTypeSticker,
	domain.LockTypeAnimation: message.ContentTypeAnimation,
	domain.LockTypeVideonote: message.ContentTypeVideoNote,
	domain.LockTypeContact:   message.ContentTypeContact,
	domain.LockTypeLocation:  message.ContentTypeLocation,
	domain.LockTypeVenue:     message.ContentTypeVenue,
	domain.LockTypePoll:      message.ContentTypePoll,
	domain.LockTypeGame:      message.ContentTypeGame,
	domain.LockTypeDice:      message.ContentTypeDice,
}

// ContentDetectors returns one detector per media lock, each testing the
// message's content tag
func ContentDetectors() []Detector {
	return lo.MapToSlice(contentLocks, func(lockType domain.LockType, contentType message.ContentType) Detector {
		return Content(lockType, contentType)
	})
}

// Content detects messages of a single content type
func Content(lockType domain.LockType, contentType message.ContentType) Detector {
	return detectorFunc{
		lockType: lockType,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			return msg.ContentType == contentType
		},
	}
}

// Text detects any message carrying plain text
func Text() Detector {
	return detectorFunc{
		lockType: domain.LockTypeText,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			return msg.ContentType == message.ContentTypeText && msg.Text != ""
		},
	}
}

// Forward detects any forwarded message
func Forward() Detector {
	return detectorFunc{
		lockType: domain.LockTypeForward,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			return msg.Forward != nil
		},
	}
}

// ForwardUser detects messages forwarded from a user account, hidden or not
func ForwardUser() Detector {
	return detectorFunc{
		lockType: domain.LockTypeForwarduser,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			return msg.Forward != nil &&
				(msg.Forward.Kind == message.ForwardKindUser || msg.Forward.Kind == message.ForwardKindHiddenUser)
		},
	}
}

// ForwardChannel detects messages forwarded from a channel
func ForwardChannel() Detector {
	return detectorFunc{
		lockType: domain.LockTypeForwardchannel,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			return msg.Forward != nil && msg.Forward.Kind == message.ForwardKindChannel
		},
	}
}

// Inline detects messages sent through an inline bot
func Inline() Detector {
	return detectorFunc{
		lockType: domain.LockTypeInline,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			return msg.ViaBot
		},
	}
}

// AnonChannel detects messages posted on behalf of a channel, except the
// automatic copies of the linked channel's posts
func AnonChannel() Detector {
	return detectorFunc{
		lockType: domain.LockTypeAnonchannel,
		detect: func(msg *message.Message, _ *domain.DetectionContext) bool {
			return msg.SenderChat != nil && msg.SenderChat.IsChannel && !msg.IsAutomaticForward
		},
	}
}

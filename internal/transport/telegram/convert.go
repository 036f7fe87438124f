package telegram

import (
	"unicode/utf16"

	"github.com/go-telegram/bot/models"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
)

// ConvertMessage reduces a Telegram message to the moderation model
func ConvertMessage(msg *models.Message) *message.Message {
	if msg == nil {
		return nil
	}

	out := &message.Message{
		ID:                 msg.ID,
		ChatID:             msg.Chat.ID,
		ContentType:        contentType(msg),
		Text:               msg.Text,
		Caption:            msg.Caption,
		ViaBot:             msg.ViaBot != nil,
		IsAutomaticForward: msg.IsAutomaticForward,
		Forward:            forward(msg.ForwardOrigin),
	}

	if msg.From != nil {
		out.From = &message.Sender{
			ID:       msg.From.ID,
			Username: msg.From.Username,
			IsBot:    msg.From.IsBot,
		}
	}
	if msg.SenderChat != nil {
		out.SenderChat = &message.SenderChat{
			ID:        msg.SenderChat.ID,
			IsChannel: msg.SenderChat.Type == models.ChatTypeChannel,
		}
	}

	if msg.Text != "" {
		out.Entities = entities(msg.Text, msg.Entities)
	} else {
		out.Entities = entities(msg.Caption, msg.CaptionEntities)
	}
	return out
}

func contentType(msg *models.Message) message.ContentType {
	switch {
	case len(msg.Photo) > 0:
		return message.ContentTypePhoto
	case msg.Video != nil:
		return message.ContentTypeVideo
	case msg.Audio != nil:
		return message.ContentTypeAudio
	case msg.Voice != nil:
		return message.ContentTypeVoice
	case msg.Sticker != nil:
		return message.ContentTypeSticker
	case msg.Animation != nil:
		return message.ContentTypeAnimation
	case msg.Document != nil:
		return message.ContentTypeDocument
	case msg.VideoNote != nil:
		return message.ContentTypeVideoNote
	case msg.Contact != nil:
		return message.ContentTypeContact
	case msg.Venue != nil:
		return message.ContentTypeVenue
	case msg.Location != nil:
		return message.ContentTypeLocation
	case msg.Poll != nil:
		return message.ContentTypePoll
	case msg.Game != nil:
		return message.ContentTypeGame
	case msg.Dice != nil:
		return message.ContentTypeDice
	case msg.Text != "":
		return message.ContentTypeText
	default:
		return message.ContentTypeOther
	}
}

func forward(origin *models.MessageOrigin) *message.Forward {
	if origin == nil {
		return nil
	}
	kind, err := message.ParseForwardKind(string(origin.Type))
	if err != nil {
		return nil
	}
	f := &message.Forward{Kind: kind}
	if origin.MessageOriginUser != nil {
		f.FromBot = origin.MessageOriginUser.SenderUser.IsBot
	}
	return f
}

// entities resolves spans against text. Telegram offsets count UTF-16 code
// units; spans outside the text are dropped.
func entities(text string, spans []models.MessageEntity) []message.Entity {
	if len(spans) == 0 {
		return nil
	}

	units := utf16.Encode([]rune(text))
	out := make([]message.Entity, 0, len(spans))
	for _, span := range spans {
		if span.Offset < 0 || span.Length < 0 || span.Offset+span.Length > len(units) {
			continue
		}
		kind, err := message.ParseEntityKind(string(span.Type))
		if err != nil {
			kind = message.EntityKindOther
		}
		out = append(out, message.Entity{
			Kind:  kind,
			Value: string(utf16.Decode(units[span.Offset : span.Offset+span.Length])),
			URL:   span.URL,
		})
	}
	return out
}

package telegram

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Platform performs moderation actions through the Bot API
type Platform struct {
	bot *bot.Bot
}

// NewPlatform creates a platform client over b
func NewPlatform(b *bot.Bot) *Platform {
	return &Platform{bot: b}
}

func (p *Platform) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if _, err := p.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	}); err != nil {
		return oops.With("chat_id", chatID, "message_id", messageID, "context", "failed to delete message").Wrap(err)
	}
	return nil
}

// RestrictMember removes every send permission until the given time, or
// forever when until is nil
func (p *Platform) RestrictMember(ctx context.Context, chatID, userID int64, until *time.Time) error {
	if _, err := p.bot.RestrictChatMember(ctx, &bot.RestrictChatMemberParams{
		ChatID:                        chatID,
		UserID:                        userID,
		Permissions:                   &models.ChatPermissions{},
		UseIndependentChatPermissions: true,
		UntilDate:                     untilDate(until),
	}); err != nil {
		return oops.With("chat_id", chatID, "user_id", userID, "context", "failed to restrict member").Wrap(err)
	}
	return nil
}

// UnrestrictMember restores the chat's default permissions for the user
func (p *Platform) UnrestrictMember(ctx context.Context, chatID, userID int64) error {
	permissions := fullPermissions()
	if chat, err := p.bot.GetChat(ctx, &bot.GetChatParams{ChatID: chatID}); err == nil && chat.Permissions != nil {
		permissions = chat.Permissions
	}

	if _, err := p.bot.RestrictChatMember(ctx, &bot.RestrictChatMemberParams{
		ChatID:                        chatID,
		UserID:                        userID,
		Permissions:                   permissions,
		UseIndependentChatPermissions: true,
	}); err != nil {
		return oops.With("chat_id", chatID, "user_id", userID, "context", "failed to lift restriction").Wrap(err)
	}
	return nil
}

func (p *Platform) BanMember(ctx context.Context, chatID, userID int64, until *time.Time) error {
	if _, err := p.bot.BanChatMember(ctx, &bot.BanChatMemberParams{
		ChatID:    chatID,
		UserID:    userID,
		UntilDate: untilDate(until),
	}); err != nil {
		return oops.With("chat_id", chatID, "user_id", userID, "context", "failed to ban member").Wrap(err)
	}
	return nil
}

func (p *Platform) UnbanMember(ctx context.Context, chatID, userID int64) error {
	if _, err := p.bot.UnbanChatMember(ctx, &bot.UnbanChatMemberParams{
		ChatID:       chatID,
		UserID:       userID,
		OnlyIfBanned: true,
	}); err != nil {
		return oops.With("chat_id", chatID, "user_id", userID, "context", "failed to unban member").Wrap(err)
	}
	return nil
}

// ListAdministrators returns the user ids of the chat's owner and admins
func (p *Platform) ListAdministrators(ctx context.Context, chatID int64) ([]int64, error) {
	members, err := p.bot.GetChatAdministrators(ctx, &bot.GetChatAdministratorsParams{ChatID: chatID})
	if err != nil {
		return nil, oops.With("chat_id", chatID, "context", "failed to list administrators").Wrap(err)
	}

	return lo.FilterMap(members, func(m models.ChatMember, _ int) (int64, bool) {
		return adminUserID(m)
	}), nil
}

func untilDate(until *time.Time) int {
	if until == nil {
		return 0
	}
	return int(until.Unix())
}

func fullPermissions() *models.ChatPermissions {
	return &models.ChatPermissions{
		CanSendMessages:       true,
		CanSendAudios:         true,
		CanSendDocuments:      true,
		CanSendPhotos:         true,
		CanSendVideos:         true,
		CanSendVideoNotes:     true,
		CanSendVoiceNotes:     true,
		CanSendPolls:          true,
		CanSendOtherMessages:  true,
		CanAddWebPagePreviews: true,
	}
}

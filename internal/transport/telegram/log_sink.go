package telegram

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

// LogSink posts audit entries to log channels as HTML messages
type LogSink struct {
	bot     *bot.Bot
	limiter *rate.Limiter
}

// NewLogSink creates a sink sending at most perSecond messages with the given burst
func NewLogSink(b *bot.Bot, perSecond float64, burst int) *LogSink {
	return &LogSink{
		bot:     b,
		limiter: rate.NewLimiter(rate.Limit(perSecond), max(burst, 1)),
	}
}

func (s *LogSink) SendLogEntry(ctx context.Context, channelID int64, entry auditDomain.Entry) bool {
	if err := s.limiter.Wait(ctx); err != nil {
		slog.Warn("Log sink rate limit wait aborted", "channel_id", channelID, "error", err)
		return false
	}

	params := &bot.SendMessageParams{
		ChatID:    channelID,
		Text:      FormatEntry(entry),
		ParseMode: models.ParseModeHTML,
	}
	if markup := undoMarkup(entry); markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := s.bot.SendMessage(ctx, params); err != nil {
		slog.Error("Failed to send log entry", "channel_id", channelID, "chat_id", entry.ChatID, "action", entry.Action, "error", err)
		return false
	}
	return true
}

// ValidateChannel checks that the bot can post in the channel
func (s *LogSink) ValidateChannel(ctx context.Context, channelID int64) bool {
	me, err := s.bot.GetMe(ctx)
	if err != nil {
		slog.Error("Failed to resolve bot identity", "error", err)
		return false
	}

	member, err := s.bot.GetChatMember(ctx, &bot.GetChatMemberParams{ChatID: channelID, UserID: me.ID})
	if err != nil {
		slog.Warn("Log channel is not reachable", "channel_id", channelID, "error", err)
		return false
	}

	switch member.Type {
	case models.ChatMemberTypeOwner:
		return true
	case models.ChatMemberTypeAdministrator:
		return member.Administrator != nil && member.Administrator.CanPostMessages
	default:
		return false
	}
}

var actionTitles = map[auditDomain.ActionType]string{
	auditDomain.ActionTypeLockEnabled:      "🔒 Lock enabled",
	auditDomain.ActionTypeLockDisabled:     "🔓 Lock disabled",
	auditDomain.ActionTypeLockWarns:        "⚙️ Lock warnings",
	auditDomain.ActionTypeExemptionAdded:   "➕ Exemption added",
	auditDomain.ActionTypeExemptionRemoved: "➖ Exemption removed",
	auditDomain.ActionTypeAllowlistAdded:   "➕ Allowlist entry added",
	auditDomain.ActionTypeAllowlistRemoved: "➖ Allowlist entry removed",
	auditDomain.ActionTypeBlocklistAdded:   "🚫 Blocklist pattern added",
	auditDomain.ActionTypeBlocklistRemoved: "♻️ Blocklist pattern removed",
	auditDomain.ActionTypeMessageDeleted:   "🗑 Message deleted",
	auditDomain.ActionTypeWarn:             "⚠️ Warning",
	auditDomain.ActionTypeUnwarn:           "✅ Warnings removed",
	auditDomain.ActionTypeMute:             "🔇 Muted",
	auditDomain.ActionTypeUnmute:           "🔊 Unmuted",
	auditDomain.ActionTypeBan:              "⛔ Banned",
	auditDomain.ActionTypeUnban:            "✅ Unbanned",
	auditDomain.ActionTypeKick:             "👢 Kicked",
	auditDomain.ActionTypeLogChannel:       "📋 Log channel changed",
	auditDomain.ActionTypeMaxWarnings:      "⚙️ Max warnings",
	auditDomain.ActionTypeWarningTtl:       "⚙️ Warning lifetime",
	auditDomain.ActionTypeThresholdAction:  "⚙️ Threshold action",
	auditDomain.ActionTypeBlocklistAction:  "⚙️ Default blocklist action",
}

// FormatEntry renders an entry as Telegram HTML
func FormatEntry(entry auditDomain.Entry) string {
	title, ok := actionTitles[entry.Action]
	if !ok {
		title = entry.Action.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "Chat: <code>%d</code>\n", entry.ChatID)
	if entry.ActorID == 0 {
		b.WriteString("By: automatic\n")
	} else {
		fmt.Fprintf(&b, "By: <a href=\"tg://user?id=%d\">%d</a>\n", entry.ActorID, entry.ActorID)
	}
	if entry.TargetID != nil {
		fmt.Fprintf(&b, "User: <a href=\"tg://user?id=%d\">%d</a>\n", *entry.TargetID, *entry.TargetID)
	}
	if entry.Reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n", html.EscapeString(entry.Reason))
	}

	keys := lo.Keys(entry.Details)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: <code>%s</code>\n", html.EscapeString(k), html.EscapeString(entry.Details[k]))
	}

	fmt.Fprintf(&b, "<i>%s</i>", entry.Timestamp.UTC().Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// undoMarkup offers the inverse action for punishments of a known user
func undoMarkup(entry auditDomain.Entry) *models.InlineKeyboardMarkup {
	if entry.TargetID == nil {
		return nil
	}

	var action CallbackAction
	var label string
	switch entry.Action {
	case auditDomain.ActionTypeMute:
		action, label = CallbackActionUnmute, "🔊 Unmute"
	case auditDomain.ActionTypeBan:
		action, label = CallbackActionUnban, "✅ Unban"
	case auditDomain.ActionTypeWarn:
		action, label = CallbackActionUnwarn, "✅ Remove warnings"
	default:
		return nil
	}

	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{{
			{Text: label, CallbackData: Callback{Action: action, ChatID: entry.ChatID, UserID: *entry.TargetID}.String()},
		}},
	}
}

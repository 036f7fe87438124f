package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	moderation "github.com/reshetovitsme/chat-moderator/internal/modules/moderation/domain"
)

type Pipeline interface {
	ProcessMessage(ctx context.Context, msg *message.Message) moderation.Outcome
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, userID, chatID int64, forceRefresh bool) bool
	Invalidate(ctx context.Context, chatID, userID int64)
}

type Punisher interface {
	Unmute(ctx context.Context, chatID, userID, issuedByID int64, reason string) bool
	Unban(ctx context.Context, chatID, userID, issuedByID int64, reason string) bool
}

type WarningRemover interface {
	RemoveWarnings(ctx context.Context, chatID, userID, issuedByID int64) (int64, error)
}

// Handler feeds group messages into the moderation pipeline and serves the
// undo buttons of the log channel
type Handler struct {
	pipeline Pipeline
	admins   AdminChecker
	punisher Punisher
	warnings WarningRemover
}

// New creates a new Telegram handler
func New(pipeline Pipeline, admins AdminChecker, punisher Punisher, warnings WarningRemover) *Handler {
	return &Handler{
		pipeline: pipeline,
		admins:   admins,
		punisher: punisher,
		warnings: warnings,
	}
}

// RegisterHandlers registers the callback handler for log channel buttons
func (h *Handler) RegisterHandlers(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, CallbackPrefix, bot.MatchTypePrefix, h.handleCallbackQuery)
}

// HandleUpdate processes incoming updates
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	switch {
	case update.Message != nil:
		h.processMessage(ctx, update.Message)
	case update.EditedMessage != nil:
		h.processMessage(ctx, update.EditedMessage)
	case update.ChatMember != nil:
		h.processMemberUpdate(ctx, update.ChatMember)
	case update.CallbackQuery != nil:
		h.handleCallbackQuery(ctx, b, update)
	}
}

func (h *Handler) processMessage(ctx context.Context, msg *models.Message) {
	if !isGroup(msg.Chat.Type) {
		return
	}

	outcome := h.pipeline.ProcessMessage(ctx, ConvertMessage(msg))
	if outcome.Violation != nil || outcome.Match != nil {
		slog.Info("Message enforced",
			"chat_id", msg.Chat.ID,
			"message_id", msg.ID,
			"outcome", outcome.Label(),
			"deleted", outcome.Deleted,
		)
	}
}

// processMemberUpdate drops cached authority when someone gains or loses admin rights
func (h *Handler) processMemberUpdate(ctx context.Context, update *models.ChatMemberUpdated) {
	for _, m := range []models.ChatMember{update.OldChatMember, update.NewChatMember} {
		if id, ok := adminUserID(m); ok {
			h.admins.Invalidate(ctx, update.Chat.ID, id)
			return
		}
	}
}

func (h *Handler) handleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	text := h.HandleCallback(ctx, query.From.ID, query.Data)
	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
		Text:            text,
	}); err != nil {
		slog.Warn("Failed to answer callback query", "error", err)
	}
}

// HandleCallback runs an undo button for clickerID and returns the reply shown to them
func (h *Handler) HandleCallback(ctx context.Context, clickerID int64, data string) string {
	cb, err := ParseCallback(data)
	if err != nil {
		slog.Warn("Ignoring malformed callback", "data", data, "error", err)
		return "Unknown action"
	}

	if !h.admins.IsAdmin(ctx, clickerID, cb.ChatID, true) {
		return "Only chat admins can do this"
	}

	const reason = "Undone from log channel"
	switch cb.Action {
	case CallbackActionUnmute:
		if !h.punisher.Unmute(ctx, cb.ChatID, cb.UserID, clickerID, reason) {
			return "Failed to unmute"
		}
		return "User unmuted"
	case CallbackActionUnban:
		if !h.punisher.Unban(ctx, cb.ChatID, cb.UserID, clickerID, reason) {
			return "Failed to unban"
		}
		return "User unbanned"
	case CallbackActionUnwarn:
		removed, err := h.warnings.RemoveWarnings(ctx, cb.ChatID, cb.UserID, clickerID)
		if err != nil {
			slog.Error("Failed to remove warnings", "chat_id", cb.ChatID, "user_id", cb.UserID, "error", err)
			return "Failed to remove warnings"
		}
		if removed == 0 {
			return "No active warnings"
		}
		return "Warnings removed"
	default:
		return "Unknown action"
	}
}

func isGroup(t models.ChatType) bool {
	return t == models.ChatTypeGroup || t == models.ChatTypeSupergroup
}

func adminUserID(m models.ChatMember) (int64, bool) {
	switch {
	case m.Owner != nil && m.Owner.User != nil:
		return m.Owner.User.ID, true
	case m.Administrator != nil:
		return m.Administrator.User.ID, true
	default:
		return 0, false
	}
}

package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/punishment/repository"
	"github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/reshetovitsme/chat-moderator/internal/shared/metrics"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// MinRestriction is the shortest restriction the platform honours; shorter
// ones would be applied forever
const MinRestriction = 30 * time.Second

// Platform is the part of the chat platform client the executor drives.
// A nil until means indefinitely.
type Platform interface {
	RestrictMember(ctx context.Context, chatID, userID int64, until *time.Time) error
	UnrestrictMember(ctx context.Context, chatID, userID int64) error
	BanMember(ctx context.Context, chatID, userID int64, until *time.Time) error
	UnbanMember(ctx context.Context, chatID, userID int64) error
}

// AuditLog receives one entry per executed action
type AuditLog interface {
	LogAction(entry auditDomain.Entry)
}

// ExecuteParams describes one punishment
type ExecuteParams struct {
	ChatID     int64
	UserID     int64
	IssuedByID int64
	Type       domain.PunishmentType
	// Duration nil means indefinitely
	Duration    *time.Duration
	Reason      string
	Source      domain.Source
	MessageText string
}

// Executor applies punishments on the platform and records every attempt
type Executor struct {
	platform Platform
	repo     repository.Repository
	audit    AuditLog
	now      func() time.Time
}

// New creates a new punishment executor
func New(platform Platform, repo repository.Repository, audit AuditLog) *Executor {
	return &Executor{
		platform: platform,
		repo:     repo,
		audit:    audit,
		now:      time.Now,
	}
}

// ExecutePunishment performs the platform side of p and records it. The
// record is written whether or not the platform call succeeds; the result
// reports the platform outcome.
func (e *Executor) ExecutePunishment(ctx context.Context, p ExecuteParams) bool {
	duration := p.Duration
	if duration != nil && *duration < MinRestriction {
		duration = lo.ToPtr(MinRestriction)
	}

	var until *time.Time
	if duration != nil {
		until = lo.ToPtr(e.now().Add(*duration))
	}

	var err error
	switch p.Type {
	case domain.PunishmentTypeNothing, domain.PunishmentTypeWarn:
		// warnings are issued by the warning service; nothing to do on the platform
	case domain.PunishmentTypeMute:
		err = e.platform.RestrictMember(ctx, p.ChatID, p.UserID, until)
	case domain.PunishmentTypeBan:
		err = e.platform.BanMember(ctx, p.ChatID, p.UserID, until)
	case domain.PunishmentTypeKick:
		duration = nil
		if err = e.platform.BanMember(ctx, p.ChatID, p.UserID, nil); err == nil {
			err = e.platform.UnbanMember(ctx, p.ChatID, p.UserID)
		}
	default:
		duration = nil
		err = oops.With("type", p.Type).Wrap(errors.ErrUnknownPunishmentType)
	}

	success := err == nil
	if !success {
		slog.Error("Failed to execute punishment",
			"type", p.Type,
			"chat_id", p.ChatID,
			"user_id", p.UserID,
			"error", err,
		)
	}

	e.record(ctx, p.ChatID, p.UserID, p.IssuedByID, p.Type.Action(), duration, p.Reason, p.Source, p.MessageText, success)
	return success
}

// Unmute restores the chat's default permissions for the user
func (e *Executor) Unmute(ctx context.Context, chatID, userID, issuedByID int64, reason string) bool {
	err := e.platform.UnrestrictMember(ctx, chatID, userID)
	if err != nil {
		slog.Error("Failed to unmute user", "chat_id", chatID, "user_id", userID, "error", err)
	}
	e.record(ctx, chatID, userID, issuedByID, domain.ActionTypeUnmute, nil, reason, domain.SourceManual, "", err == nil)
	return err == nil
}

// Unban lifts a ban so the user may rejoin
func (e *Executor) Unban(ctx context.Context, chatID, userID, issuedByID int64, reason string) bool {
	err := e.platform.UnbanMember(ctx, chatID, userID)
	if err != nil {
		slog.Error("Failed to unban user", "chat_id", chatID, "user_id", userID, "error", err)
	}
	e.record(ctx, chatID, userID, issuedByID, domain.ActionTypeUnban, nil, reason, domain.SourceManual, "", err == nil)
	return err == nil
}

// RecordWarningAction appends a WARN or UNWARN record for the warning
// service. Its audit entries are emitted by the caller.
func (e *Executor) RecordWarningAction(ctx context.Context, chatID, userID, issuedByID int64, action domain.ActionType, reason string, source domain.Source, messageText string) {
	rec := newRecord(chatID, userID, issuedByID, action, nil, reason, source, messageText, true)
	rec.CreatedAt = e.now()
	if err := e.repo.Append(ctx, rec); err != nil {
		slog.Error("Failed to record warning action", "action", action, "chat_id", chatID, "user_id", userID, "error", err)
	}
	metrics.Punishments.WithLabelValues(action.String(), "ok").Inc()
}

// ListRecent returns the chat's newest punishment records
func (e *Executor) ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Record, error) {
	return e.repo.ListRecent(ctx, chatID, limit)
}

func (e *Executor) record(ctx context.Context, chatID, userID, issuedByID int64, action domain.ActionType, duration *time.Duration, reason string, source domain.Source, messageText string, success bool) {
	rec := newRecord(chatID, userID, issuedByID, action, duration, reason, source, messageText, success)
	rec.CreatedAt = e.now()
	if err := e.repo.Append(ctx, rec); err != nil {
		slog.Error("Failed to record punishment", "action", action, "chat_id", chatID, "user_id", userID, "error", err)
	}

	metrics.Punishments.WithLabelValues(action.String(), lo.Ternary(success, "ok", "failed")).Inc()

	details := map[string]string{
		"source":  source.String(),
		"success": strconv.FormatBool(success),
	}
	if duration != nil {
		details["duration"] = duration.String()
	}

	auditAction, err := auditDomain.ParseActionType(action.String())
	if err != nil {
		auditAction = auditDomain.ActionTypeNothing
	}
	e.audit.LogAction(auditDomain.Entry{
		ChatID:    chatID,
		Action:    auditAction,
		ActorID:   issuedByID,
		TargetID:  lo.ToPtr(userID),
		Reason:    reason,
		Details:   details,
		Timestamp: rec.CreatedAt,
	})
}

func newRecord(chatID, userID, issuedByID int64, action domain.ActionType, duration *time.Duration, reason string, source domain.Source, messageText string, success bool) *domain.Record {
	rec := &domain.Record{
		ChatID:     chatID,
		UserID:     userID,
		IssuedByID: issuedByID,
		Action:     action,
		Source:     source,
		Success:    success,
	}
	if duration != nil {
		rec.DurationSeconds = lo.ToPtr(int64(duration.Seconds()))
	}
	if reason != "" {
		rec.Reason = lo.ToPtr(reason)
	}
	if messageText != "" {
		rec.MessageText = lo.ToPtr(messageText)
	}
	return rec
}

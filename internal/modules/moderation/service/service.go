package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	blocklist "github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/domain"
	chatconfig "github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/domain"
	lock "github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/moderation/domain"
	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	punishmentService "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/service"
	warning "github.com/reshetovitsme/chat-moderator/internal/modules/warning/domain"
	warningService "github.com/reshetovitsme/chat-moderator/internal/modules/warning/service"
	"github.com/reshetovitsme/chat-moderator/internal/shared/metrics"
	"github.com/samber/lo"
)

type ExemptionResolver interface {
	IsExempt(ctx context.Context, msg *message.Message, chatID int64, userID *int64) bool
}

type LockEvaluator interface {
	Evaluate(ctx context.Context, msg *message.Message, chatID int64) *lock.Violation
}

type BlocklistMatcher interface {
	CheckMessage(ctx context.Context, chatID int64, text string) *blocklist.Match
	ResolveAction(match *blocklist.Match, cfg chatconfig.ModerationConfig) (punishment.PunishmentType, *int)
}

type ConfigReader interface {
	Get(ctx context.Context, chatID int64) chatconfig.ModerationConfig
}

type WarningIssuer interface {
	IssueWarningWithThreshold(ctx context.Context, chatID, userID, issuedByID int64, reason string) (*warning.WarningWithThresholdResult, error)
}

type PunishmentExecutor interface {
	ExecutePunishment(ctx context.Context, p punishmentService.ExecuteParams) bool
}

// MessageDeleter removes offending messages from the chat
type MessageDeleter interface {
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

type AuditLog interface {
	LogAction(entry auditDomain.Entry)
}

// Deps groups the collaborators of the pipeline
type Deps struct {
	Exemptions ExemptionResolver
	Locks      LockEvaluator
	Blocklist  BlocklistMatcher
	Configs    ConfigReader
	Warnings   WarningIssuer
	Executor   PunishmentExecutor
	Deleter    MessageDeleter
	Audit      AuditLog
}

// Service runs every inbound group message through exemptions, locks and the
// blocklist and applies the resulting enforcement
type Service struct {
	deps Deps
}

// New creates a new moderation pipeline
func New(deps Deps) *Service {
	return &Service{deps: deps}
}

// ProcessMessage evaluates one message. It never panics; a failure inside the
// pipeline leaves the message untouched and is reported in the outcome.
func (s *Service) ProcessMessage(ctx context.Context, msg *message.Message) (outcome domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic while moderating message", "chat_id", msg.ChatID, "message_id", msg.ID, "panic", fmt.Sprint(r))
			outcome = domain.Outcome{Failed: true}
		}
		metrics.MessagesEvaluated.WithLabelValues(outcome.Label()).Inc()
	}()

	if msg == nil || msg.ChatID == 0 {
		return domain.Outcome{Skipped: true}
	}

	chatID := msg.ChatID
	userID := msg.SenderID()

	if s.deps.Exemptions.IsExempt(ctx, msg, chatID, userID) {
		return domain.Outcome{Exempt: true}
	}

	if violation := s.deps.Locks.Evaluate(ctx, msg, chatID); violation != nil {
		return s.handleViolation(ctx, msg, userID, violation)
	}

	if match := s.deps.Blocklist.CheckMessage(ctx, chatID, msg.Body()); match != nil {
		return s.handleMatch(ctx, msg, userID, match)
	}

	return domain.Outcome{}
}

func (s *Service) handleViolation(ctx context.Context, msg *message.Message, userID *int64, violation *lock.Violation) domain.Outcome {
	outcome := domain.Outcome{Violation: violation}
	outcome.Deleted = s.deleteMessage(ctx, msg, userID, map[string]string{"lock_type": violation.LockType.String()})

	if userID == nil {
		return outcome
	}

	cfg := s.deps.Configs.Get(ctx, msg.ChatID)
	if !cfg.LockWarns {
		return outcome
	}

	reason := "Locked: " + violation.LockType.String()
	if violation.Reason != nil && *violation.Reason != "" {
		reason += " (" + *violation.Reason + ")"
	}
	outcome.Warning, outcome.Action = s.warn(ctx, msg, *userID, reason)
	return outcome
}

func (s *Service) handleMatch(ctx context.Context, msg *message.Message, userID *int64, match *blocklist.Match) domain.Outcome {
	outcome := domain.Outcome{Match: match}
	outcome.Deleted = s.deleteMessage(ctx, msg, userID, map[string]string{"pattern": match.Pattern})

	if userID == nil {
		return outcome
	}

	cfg := s.deps.Configs.Get(ctx, msg.ChatID)
	action, durationMinutes := s.deps.Blocklist.ResolveAction(match, cfg)
	reason := "Blocklisted: " + match.Pattern

	if action == punishment.PunishmentTypeWarn {
		outcome.Warning, outcome.Action = s.warn(ctx, msg, *userID, reason)
		return outcome
	}

	s.deps.Executor.ExecutePunishment(ctx, punishmentService.ExecuteParams{
		ChatID:      msg.ChatID,
		UserID:      *userID,
		IssuedByID:  warningService.SystemIssuer,
		Type:        action,
		Duration:    minutes(durationMinutes),
		Reason:      reason,
		Source:      punishment.SourceAutomatic,
		MessageText: msg.Body(),
	})
	outcome.Action = lo.ToPtr(action)
	return outcome
}

// warn issues an automatic warning and escalates when it crosses the limit
func (s *Service) warn(ctx context.Context, msg *message.Message, userID int64, reason string) (*warning.WarningWithThresholdResult, *punishment.PunishmentType) {
	result, err := s.deps.Warnings.IssueWarningWithThreshold(ctx, msg.ChatID, userID, warningService.SystemIssuer, reason)
	if err != nil {
		slog.Error("Failed to issue warning", "chat_id", msg.ChatID, "user_id", userID, "error", err)
		return nil, nil
	}
	if !result.ThresholdTriggered || result.ThresholdAction == nil {
		return result, lo.ToPtr(punishment.PunishmentTypeWarn)
	}

	action := *result.ThresholdAction
	s.deps.Executor.ExecutePunishment(ctx, punishmentService.ExecuteParams{
		ChatID:      msg.ChatID,
		UserID:      userID,
		IssuedByID:  warningService.SystemIssuer,
		Type:        action,
		Duration:    minutes(result.ThresholdDurationMinutes),
		Reason:      fmt.Sprintf("Warning limit reached (%d/%d)", result.ActiveCount, result.MaxWarnings),
		Source:      punishment.SourceThreshold,
		MessageText: msg.Body(),
	})
	return result, lo.ToPtr(action)
}

func (s *Service) deleteMessage(ctx context.Context, msg *message.Message, userID *int64, details map[string]string) bool {
	if err := s.deps.Deleter.DeleteMessage(ctx, msg.ChatID, msg.ID); err != nil {
		slog.Warn("Failed to delete message", "chat_id", msg.ChatID, "message_id", msg.ID, "error", err)
		return false
	}

	details["message_id"] = strconv.Itoa(msg.ID)
	s.deps.Audit.LogAction(auditDomain.Entry{
		ChatID:    msg.ChatID,
		Action:    auditDomain.ActionTypeMessageDeleted,
		ActorID:   warningService.SystemIssuer,
		TargetID:  userID,
		Details:   details,
		Timestamp: time.Now(),
	})
	return true
}

// minutes converts a stored duration; nil or non-positive means indefinitely
func minutes(m *int) *time.Duration {
	if m == nil || *m <= 0 {
		return nil
	}
	return lo.ToPtr(time.Duration(*m) * time.Minute)
}

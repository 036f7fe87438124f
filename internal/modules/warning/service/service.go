package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	chatconfig "github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/domain"
	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/warning/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/warning/repository"
	"github.com/reshetovitsme/chat-moderator/internal/shared/metrics"
	"github.com/samber/lo"
)

// SystemIssuer is the issuer id of warnings raised by automatic enforcement
const SystemIssuer int64 = 0

// ConfigReader returns a chat's settings, defaults included
type ConfigReader interface {
	Get(ctx context.Context, chatID int64) chatconfig.ModerationConfig
}

// ActionRecorder appends WARN and UNWARN records to the punishment log
type ActionRecorder interface {
	RecordWarningAction(ctx context.Context, chatID, userID, issuedByID int64, action punishment.ActionType, reason string, source punishment.Source, messageText string)
}

// AuditLog receives warning events
type AuditLog interface {
	LogAction(entry auditDomain.Entry)
}

// Service issues warnings and decides threshold escalation
type Service struct {
	repo     repository.Repository
	configs  ConfigReader
	recorder ActionRecorder
	audit    AuditLog
	users    *keyedMutex
	now      func() time.Time
}

// New creates a new warning service
func New(repo repository.Repository, configs ConfigReader, recorder ActionRecorder, audit AuditLog) *Service {
	return &Service{
		repo:     repo,
		configs:  configs,
		recorder: recorder,
		audit:    audit,
		users:    newKeyedMutex(),
		now:      time.Now,
	}
}

// IssueWarningWithThreshold stores a warning and reports whether it brought
// the user's active warnings up to the chat's limit. Only the warning that
// crosses the limit triggers, so concurrent warnings cannot both escalate.
// A user already at or over the limit is not escalated again by further
// warnings; the next trigger needs the count to drop below the limit first,
// through expiry or RemoveWarnings. Calls for the same user are serialized in
// process and the insert and count share one transaction.
func (s *Service) IssueWarningWithThreshold(ctx context.Context, chatID, userID, issuedByID int64, reason string) (*domain.WarningWithThresholdResult, error) {
	unlock := s.users.Lock(userKey{chatID: chatID, userID: userID})
	defer unlock()

	cfg := s.configs.Get(ctx, chatID)
	now := s.now()

	warning := &domain.Warning{
		ChatID:     chatID,
		UserID:     userID,
		IssuedByID: issuedByID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(cfg.WarningTTL()),
	}
	if reason != "" {
		warning.Reason = lo.ToPtr(reason)
	}

	before, after, err := s.repo.IssueAndCount(ctx, warning, now)
	if err != nil {
		return nil, err
	}

	limit := int64(cfg.MaxWarnings)
	result := &domain.WarningWithThresholdResult{
		Warning:            *warning,
		ActiveCount:        after,
		MaxWarnings:        cfg.MaxWarnings,
		ThresholdTriggered: before < limit && after >= limit,
	}
	if result.ThresholdTriggered {
		result.ThresholdAction = lo.ToPtr(cfg.ThresholdAction)
		result.ThresholdDurationMinutes = cfg.ThresholdDurationMinutes
	}

	metrics.WarningsIssued.WithLabelValues(strconv.FormatBool(result.ThresholdTriggered)).Inc()

	source := lo.Ternary(issuedByID == SystemIssuer, punishment.SourceAutomatic, punishment.SourceManual)
	s.recorder.RecordWarningAction(ctx, chatID, userID, issuedByID, punishment.ActionTypeWarn, reason, source, "")

	s.audit.LogAction(auditDomain.Entry{
		ChatID:   chatID,
		Action:   auditDomain.ActionTypeWarn,
		ActorID:  issuedByID,
		TargetID: lo.ToPtr(userID),
		Reason:   reason,
		Details: map[string]string{
			"count":     strconv.FormatInt(after, 10),
			"max":       strconv.Itoa(cfg.MaxWarnings),
			"threshold": strconv.FormatBool(result.ThresholdTriggered),
		},
		Timestamp: now,
	})

	slog.Info("Warning issued",
		"chat_id", chatID,
		"user_id", userID,
		"active", after,
		"max", cfg.MaxWarnings,
		"threshold_triggered", result.ThresholdTriggered,
	)
	return result, nil
}

// RemoveWarnings pardons a user by deleting all of their active warnings
func (s *Service) RemoveWarnings(ctx context.Context, chatID, userID, issuedByID int64) (int64, error) {
	unlock := s.users.Lock(userKey{chatID: chatID, userID: userID})
	defer unlock()

	now := s.now()
	removed, err := s.repo.DeleteActive(ctx, chatID, userID, now)
	if err != nil {
		return 0, err
	}

	s.recorder.RecordWarningAction(ctx, chatID, userID, issuedByID, punishment.ActionTypeUnwarn, "", punishment.SourceManual, "")
	s.audit.LogAction(auditDomain.Entry{
		ChatID:    chatID,
		Action:    auditDomain.ActionTypeUnwarn,
		ActorID:   issuedByID,
		TargetID:  lo.ToPtr(userID),
		Details:   map[string]string{"removed": strconv.FormatInt(removed, 10)},
		Timestamp: now,
	})
	return removed, nil
}

// GetActiveWarningCount returns how many unexpired warnings the user has
func (s *Service) GetActiveWarningCount(ctx context.Context, chatID, userID int64) (int64, error) {
	return s.repo.CountActive(ctx, chatID, userID, s.now())
}

// ListActiveWarnings returns the user's unexpired warnings, oldest first
func (s *Service) ListActiveWarnings(ctx context.Context, chatID, userID int64) ([]domain.Warning, error) {
	return s.repo.ListActive(ctx, chatID, userID, s.now())
}

package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/repository"
	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/samber/oops"
)

const (
	maxWarningsLimit     = 100
	maxWarningTTLHours   = 24 * 366
	maxThresholdDuration = 366 * 24 * 60
)

// AuditLog receives the audit entries of settings changes
type AuditLog interface {
	LogAction(entry auditDomain.Entry)
	FlushForChat(chatID int64)
}

// ChannelValidator checks that a log channel can receive entries
type ChannelValidator interface {
	ValidateChannel(ctx context.Context, channelID int64) bool
}

// Service handles per-chat moderation settings
type Service struct {
	repo      repository.Repository
	audit     AuditLog
	validator ChannelValidator
}

// New creates a new chat config service
func New(repo repository.Repository, audit AuditLog, validator ChannelValidator) *Service {
	return &Service{
		repo:      repo,
		audit:     audit,
		validator: validator,
	}
}

// Get returns the chat's settings, falling back to defaults when none are
// stored or storage is unreachable
func (s *Service) Get(ctx context.Context, chatID int64) domain.ModerationConfig {
	cfg, found, err := s.repo.GetConfig(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load moderation config, using defaults", "chat_id", chatID, "error", err)
		return domain.DefaultConfig(chatID)
	}
	if !found {
		return domain.DefaultConfig(chatID)
	}
	return *cfg
}

// SetMaxWarnings sets how many active warnings trigger the threshold action
func (s *Service) SetMaxWarnings(ctx context.Context, chatID, actorID int64, maxWarnings int) error {
	if maxWarnings < 1 || maxWarnings > maxWarningsLimit {
		return oops.With("max_warnings", maxWarnings).Wrap(errors.ErrInvalidSetting)
	}
	return s.update(ctx, chatID, actorID, auditDomain.ActionTypeMaxWarnings,
		map[string]string{"max_warnings": strconv.Itoa(maxWarnings)},
		func(cfg *domain.ModerationConfig) error {
			cfg.MaxWarnings = maxWarnings
			return nil
		})
}

// SetWarningTTL sets how long a warning stays active
func (s *Service) SetWarningTTL(ctx context.Context, chatID, actorID int64, hours int) error {
	if hours < 1 || hours > maxWarningTTLHours {
		return oops.With("warning_ttl_hours", hours).Wrap(errors.ErrInvalidSetting)
	}
	return s.update(ctx, chatID, actorID, auditDomain.ActionTypeWarningTtl,
		map[string]string{"warning_ttl_hours": strconv.Itoa(hours)},
		func(cfg *domain.ModerationConfig) error {
			cfg.WarningTTLHours = hours
			return nil
		})
}

// SetThresholdAction sets the punishment applied once the warning limit is reached
func (s *Service) SetThresholdAction(ctx context.Context, chatID, actorID int64, action punishment.PunishmentType, durationMinutes *int) error {
	if !action.IsValid() || action == punishment.PunishmentTypeWarn {
		return oops.With("threshold_action", action).Wrap(errors.ErrInvalidSetting)
	}
	if durationMinutes != nil && (*durationMinutes < 0 || *durationMinutes > maxThresholdDuration) {
		return oops.With("threshold_duration_minutes", *durationMinutes).Wrap(errors.ErrInvalidSetting)
	}

	details := map[string]string{"threshold_action": action.String()}
	if durationMinutes != nil {
		details["duration_minutes"] = strconv.Itoa(*durationMinutes)
	}
	return s.update(ctx, chatID, actorID, auditDomain.ActionTypeThresholdAction, details,
		func(cfg *domain.ModerationConfig) error {
			cfg.ThresholdAction = action
			cfg.ThresholdDurationMinutes = durationMinutes
			return nil
		})
}

// SetDefaultBlocklistAction sets the action used by patterns without their own
func (s *Service) SetDefaultBlocklistAction(ctx context.Context, chatID, actorID int64, action punishment.PunishmentType) error {
	if !action.IsValid() {
		return oops.With("blocklist_action", action).Wrap(errors.ErrInvalidSetting)
	}
	return s.update(ctx, chatID, actorID, auditDomain.ActionTypeBlocklistAction,
		map[string]string{"blocklist_action": action.String()},
		func(cfg *domain.ModerationConfig) error {
			cfg.DefaultBlocklistAction = action
			return nil
		})
}

// SetLockWarns toggles warnings for lock violations
func (s *Service) SetLockWarns(ctx context.Context, chatID, actorID int64, enabled bool) error {
	return s.update(ctx, chatID, actorID, auditDomain.ActionTypeLockWarns,
		map[string]string{"enabled": strconv.FormatBool(enabled)},
		func(cfg *domain.ModerationConfig) error {
			cfg.LockWarns = enabled
			return nil
		})
}

// SetLogChannel points the chat's audit trail at channelID. Pending entries
// are flushed to the previous destination first.
func (s *Service) SetLogChannel(ctx context.Context, chatID, actorID, channelID int64) error {
	if s.validator != nil && !s.validator.ValidateChannel(ctx, channelID) {
		return oops.With("chat_id", chatID, "channel_id", channelID).Wrap(errors.ErrInvalidLogChannel)
	}

	s.audit.FlushForChat(chatID)

	return s.update(ctx, chatID, actorID, auditDomain.ActionTypeLogChannel,
		map[string]string{"channel_id": strconv.FormatInt(channelID, 10)},
		func(cfg *domain.ModerationConfig) error {
			cfg.LogChannelID = &channelID
			return nil
		})
}

// ClearLogChannel stops audit delivery for the chat after flushing what is pending
func (s *Service) ClearLogChannel(ctx context.Context, chatID, actorID int64) error {
	s.audit.FlushForChat(chatID)

	_, err := s.repo.UpdateConfig(ctx, chatID, func(cfg *domain.ModerationConfig) error {
		cfg.LogChannelID = nil
		return nil
	})
	return err
}

func (s *Service) update(ctx context.Context, chatID, actorID int64, action auditDomain.ActionType, details map[string]string, fn func(cfg *domain.ModerationConfig) error) error {
	if _, err := s.repo.UpdateConfig(ctx, chatID, func(cfg *domain.ModerationConfig) error {
		cfg.UpdatedAt = time.Now()
		return fn(cfg)
	}); err != nil {
		return err
	}

	s.audit.LogAction(auditDomain.Entry{
		ChatID:    chatID,
		Action:    action,
		ActorID:   actorID,
		Details:   details,
		Timestamp: time.Now(),
	})
	return nil
}

// ChannelResolver reads a chat's log destination straight from storage so the
// audit dispatcher can resolve it at send time
type ChannelResolver struct {
	repo repository.Repository
}

// NewChannelResolver creates a resolver over the settings repository
func NewChannelResolver(repo repository.Repository) *ChannelResolver {
	return &ChannelResolver{repo: repo}
}

func (r *ChannelResolver) LogChannel(ctx context.Context, chatID int64) (int64, bool) {
	cfg, found, err := r.repo.GetConfig(ctx, chatID)
	if err != nil {
		slog.Error("Failed to resolve log channel", "chat_id", chatID, "error", err)
		return 0, false
	}
	if !found || cfg.LogChannelID == nil {
		return 0, false
	}
	return *cfg.LogChannelID, true
}

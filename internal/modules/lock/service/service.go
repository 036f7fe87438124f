package service

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/detector"
	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/repository"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/reshetovitsme/chat-moderator/internal/shared/metrics"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// AuditLog receives lock and allowlist changes
type AuditLog interface {
	LogAction(entry auditDomain.Entry)
}

// LockWarnsSetter stores the per-chat lock warnings toggle
type LockWarnsSetter interface {
	SetLockWarns(ctx context.Context, chatID, actorID int64, enabled bool) error
}

// Service manages chat locks and evaluates messages against them
type Service struct {
	repo     repository.Repository
	registry *detector.Registry
	settings LockWarnsSetter
	audit    AuditLog
}

// New creates a new lock service
func New(repo repository.Repository, registry *detector.Registry, settings LockWarnsSetter, audit AuditLog) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
		settings: settings,
		audit:    audit,
	}
}

// GetActiveLocks returns the chat's enabled locks. Storage failures are
// logged and yield no locks.
func (s *Service) GetActiveLocks(ctx context.Context, chatID int64) map[domain.LockType]domain.LockConfig {
	locks, err := s.repo.GetLocks(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load locks", "chat_id", chatID, "error", err)
		return map[domain.LockType]domain.LockConfig{}
	}
	return lo.PickBy(locks, func(_ domain.LockType, cfg domain.LockConfig) bool {
		return cfg.Locked
	})
}

// IsLockActive reports whether lockType is enabled in the chat
func (s *Service) IsLockActive(ctx context.Context, chatID int64, lockType domain.LockType) bool {
	_, ok := s.GetActiveLocks(ctx, chatID)[lockType]
	return ok
}

// SetLock enables or disables a lock
func (s *Service) SetLock(ctx context.Context, chatID, actorID int64, lockType domain.LockType, locked bool, reason *string) error {
	if !lockType.IsValid() {
		return oops.With("lock_type", lockType).Wrap(errors.ErrUnknownLockType)
	}

	err := s.repo.UpdateLocks(ctx, chatID, func(locks map[domain.LockType]domain.LockConfig) {
		if !locked {
			delete(locks, lockType)
			return
		}
		locks[lockType] = domain.LockConfig{Locked: true, Reason: reason}
	})
	if err != nil {
		return err
	}

	details := map[string]string{
		"lock_type": lockType.String(),
		"category":  lockType.Category().String(),
	}
	entry := auditDomain.Entry{
		ChatID:    chatID,
		Action:    lo.Ternary(locked, auditDomain.ActionTypeLockEnabled, auditDomain.ActionTypeLockDisabled),
		ActorID:   actorID,
		Details:   details,
		Timestamp: time.Now(),
	}
	if reason != nil {
		entry.Reason = *reason
	}
	s.audit.LogAction(entry)

	slog.Info("Lock updated", "chat_id", chatID, "lock_type", lockType, "locked", locked)
	return nil
}

// SetLockWarns toggles whether lock violations issue warnings
func (s *Service) SetLockWarns(ctx context.Context, chatID, actorID int64, enabled bool) error {
	return s.settings.SetLockWarns(ctx, chatID, actorID, enabled)
}

// BuildDetectionContext loads the chat's allowlists. Storage failures are
// logged and yield empty allowlists.
func (s *Service) BuildDetectionContext(ctx context.Context, chatID int64) *domain.DetectionContext {
	entries, err := s.repo.ListAllowlist(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load allowlist", "chat_id", chatID, "error", err)
	}
	return domain.NewDetectionContext(chatID, entries)
}

// Evaluate runs the detectors of the chat's active locks in lock type order
// and returns the first violation, or nil
func (s *Service) Evaluate(ctx context.Context, msg *message.Message, chatID int64) *domain.Violation {
	locks := s.GetActiveLocks(ctx, chatID)
	if len(locks) == 0 {
		return nil
	}

	dc := s.BuildDetectionContext(ctx, chatID)

	types := lo.Keys(locks)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, lockType := range types {
		d, ok := s.registry.Get(lockType)
		if !ok {
			slog.Warn("No detector registered for lock type, skipping", "chat_id", chatID, "lock_type", lockType)
			continue
		}
		if d.Detect(msg, dc) {
			metrics.LockViolations.WithLabelValues(lockType.String()).Inc()
			return &domain.Violation{LockType: lockType, Reason: locks[lockType].Reason}
		}
	}
	return nil
}

// AddAllowlist excludes a URL, domain or command from enforcement
func (s *Service) AddAllowlist(ctx context.Context, chatID, actorID int64, typ domain.AllowlistType, pattern string) error {
	normalized, err := normalizeAllowlist(typ, pattern)
	if err != nil {
		return err
	}

	created, err := s.repo.AddAllowlist(ctx, &domain.AllowlistEntry{
		ChatID:        chatID,
		AllowlistType: typ,
		Pattern:       normalized,
	})
	if err != nil {
		return err
	}
	if !created {
		return oops.With("chat_id", chatID, "type", typ, "pattern", normalized).Wrap(errors.ErrAllowlistExists)
	}

	s.logAllowlist(chatID, actorID, auditDomain.ActionTypeAllowlistAdded, typ, normalized)
	return nil
}

// RemoveAllowlist drops an allowlist entry
func (s *Service) RemoveAllowlist(ctx context.Context, chatID, actorID int64, typ domain.AllowlistType, pattern string) error {
	normalized, err := normalizeAllowlist(typ, pattern)
	if err != nil {
		return err
	}

	removed, err := s.repo.RemoveAllowlist(ctx, chatID, typ, normalized)
	if err != nil {
		return err
	}
	if !removed {
		return oops.With("chat_id", chatID, "type", typ, "pattern", normalized).Wrap(errors.ErrAllowlistNotFound)
	}

	s.logAllowlist(chatID, actorID, auditDomain.ActionTypeAllowlistRemoved, typ, normalized)
	return nil
}

// ListAllowlist returns the chat's allowlist entries
func (s *Service) ListAllowlist(ctx context.Context, chatID int64) ([]domain.AllowlistEntry, error) {
	return s.repo.ListAllowlist(ctx, chatID)
}

func (s *Service) logAllowlist(chatID, actorID int64, action auditDomain.ActionType, typ domain.AllowlistType, pattern string) {
	s.audit.LogAction(auditDomain.Entry{
		ChatID:  chatID,
		Action:  action,
		ActorID: actorID,
		Details: map[string]string{
			"type":    typ.String(),
			"pattern": pattern,
		},
		Timestamp: time.Now(),
	})
}

func normalizeAllowlist(typ domain.AllowlistType, pattern string) (string, error) {
	var normalized string
	switch typ {
	case domain.AllowlistTypeUrl:
		normalized = strings.ToLower(strings.TrimSpace(pattern))
	case domain.AllowlistTypeDomain:
		normalized = domain.NormalizeDomain(pattern)
	case domain.AllowlistTypeCommand:
		normalized = domain.NormalizeCommand(pattern)
	default:
		return "", oops.With("type", typ).Wrap(errors.ErrInvalidAllowlist)
	}

	if normalized == "" || len(normalized) > 255 {
		return "", oops.With("type", typ, "length", strconv.Itoa(len(normalized))).Wrap(errors.ErrInvalidAllowlist)
	}
	return normalized, nil
}

package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/exemption/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/exemption/repository"
	lockDomain "github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// AdminChecker answers cached admin checks
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID, chatID int64, forceRefresh bool) bool
}

// LockChecker reports whether a lock is enabled in a chat
type LockChecker interface {
	IsLockActive(ctx context.Context, chatID int64, lockType lockDomain.LockType) bool
}

// AuditLog receives exemption changes
type AuditLog interface {
	LogAction(entry auditDomain.Entry)
}

// Service decides whether a message is out of scope for enforcement and
// manages the stored exemptions
type Service struct {
	repo   repository.Repository
	admins AdminChecker
	locks  LockChecker
	audit  AuditLog
}

// New creates a new exemption service
func New(repo repository.Repository, admins AdminChecker, locks LockChecker, audit AuditLog) *Service {
	return &Service{
		repo:   repo,
		admins: admins,
		locks:  locks,
		audit:  audit,
	}
}

// IsExempt applies the exemption rules in order, the first match wins:
// chat admins, exempted bots, linked channel copies while the anonchannel
// lock is off, then user exemptions. Exemptions are read from storage on
// every call.
func (s *Service) IsExempt(ctx context.Context, msg *message.Message, chatID int64, userID *int64) bool {
	if userID != nil && s.admins.IsAdmin(ctx, *userID, chatID, false) {
		return true
	}
	// anonymous group admins post as the group itself
	if msg.SenderChat != nil && msg.SenderChat.ID == chatID {
		return true
	}

	var exemptions []domain.Exemption
	loaded := false
	load := func() []domain.Exemption {
		if !loaded {
			exemptions = s.listForCheck(ctx, chatID)
			loaded = true
		}
		return exemptions
	}

	if msg.From != nil && msg.From.IsBot && msg.From.Username != "" {
		username := normalizeUsername(msg.From.Username)
		if lo.ContainsBy(load(), func(e domain.Exemption) bool {
			return e.ExemptionType == domain.ExemptionTypeBot && normalizeUsername(e.Value) == username
		}) {
			return true
		}
	}

	if msg.IsAutomaticForward && !s.locks.IsLockActive(ctx, chatID, lockDomain.LockTypeAnonchannel) {
		return true
	}

	if userID != nil {
		id := strconv.FormatInt(*userID, 10)
		if lo.ContainsBy(load(), func(e domain.Exemption) bool {
			return e.ExemptionType == domain.ExemptionTypeUser && e.Value == id
		}) {
			return true
		}
	}

	return false
}

// AddExemption stores an exemption; a nil lockType covers every lock
func (s *Service) AddExemption(ctx context.Context, chatID, actorID int64, lockType *lockDomain.LockType, typ domain.ExemptionType, value string) error {
	exemption, err := newExemption(chatID, lockType, typ, value)
	if err != nil {
		return err
	}

	created, err := s.repo.Add(ctx, exemption)
	if err != nil {
		return err
	}
	if !created {
		return oops.With("chat_id", chatID, "type", typ, "value", exemption.Value).Wrap(errors.ErrExemptionExists)
	}

	s.log(chatID, actorID, auditDomain.ActionTypeExemptionAdded, exemption)
	return nil
}

// RemoveExemption deletes a stored exemption
func (s *Service) RemoveExemption(ctx context.Context, chatID, actorID int64, lockType *lockDomain.LockType, typ domain.ExemptionType, value string) error {
	exemption, err := newExemption(chatID, lockType, typ, value)
	if err != nil {
		return err
	}

	removed, err := s.repo.Remove(ctx, chatID, exemption.LockType, typ, exemption.Value)
	if err != nil {
		return err
	}
	if !removed {
		return oops.With("chat_id", chatID, "type", typ, "value", exemption.Value).Wrap(errors.ErrExemptionNotFound)
	}

	s.log(chatID, actorID, auditDomain.ActionTypeExemptionRemoved, exemption)
	return nil
}

// ListExemptions returns the chat's exemptions
func (s *Service) ListExemptions(ctx context.Context, chatID int64) ([]domain.Exemption, error) {
	return s.repo.ListByChat(ctx, chatID)
}

func (s *Service) listForCheck(ctx context.Context, chatID int64) []domain.Exemption {
	exemptions, err := s.repo.ListByChat(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load exemptions, assuming none", "chat_id", chatID, "error", err)
		return nil
	}
	return exemptions
}

func (s *Service) log(chatID, actorID int64, action auditDomain.ActionType, e *domain.Exemption) {
	details := map[string]string{
		"type":  e.ExemptionType.String(),
		"value": e.Value,
		"scope": "all",
	}
	if e.LockType != nil {
		details["scope"] = *e.LockType
	}
	s.audit.LogAction(auditDomain.Entry{
		ChatID:    chatID,
		Action:    action,
		ActorID:   actorID,
		Details:   details,
		Timestamp: time.Now(),
	})
}

func newExemption(chatID int64, lockType *lockDomain.LockType, typ domain.ExemptionType, value string) (*domain.Exemption, error) {
	e := &domain.Exemption{ChatID: chatID, ExemptionType: typ}

	if lockType != nil {
		if !lockType.IsValid() {
			return nil, oops.With("lock_type", *lockType).Wrap(errors.ErrUnknownLockType)
		}
		e.LockType = lo.ToPtr(lockType.String())
	}

	switch typ {
	case domain.ExemptionTypeUser:
		id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, oops.With("value", value).Wrap(errors.ErrInvalidExemption)
		}
		e.Value = strconv.FormatInt(id, 10)
	case domain.ExemptionTypeBot:
		e.Value = normalizeUsername(value)
		if e.Value == "" {
			return nil, oops.With("value", value).Wrap(errors.ErrInvalidExemption)
		}
	default:
		return nil, oops.With("type", typ).Wrap(errors.ErrInvalidExemption)
	}
	return e, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
}

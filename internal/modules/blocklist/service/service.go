package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/repository"
	chatconfig "github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/domain"
	punishment "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/samber/oops"
)

const maxPatternLength = 255

// AuditLog receives blocklist changes
type AuditLog interface {
	LogAction(entry auditDomain.Entry)
}

// AddPatternParams describes a new blocklist pattern. A nil ChatID adds a
// global pattern; a nil Action defers to the chat default.
type AddPatternParams struct {
	ChatID          *int64
	Pattern         string
	MatchType       domain.MatchType
	Action          *punishment.PunishmentType
	DurationMinutes *int
	Severity        int
	CreatedBy       int64
}

// Service matches message text against blocklist patterns
type Service struct {
	repo    repository.Repository
	audit   AuditLog
	matcher *matcher
}

// New creates a new blocklist service
func New(repo repository.Repository, audit AuditLog) *Service {
	return &Service{
		repo:    repo,
		audit:   audit,
		matcher: &matcher{},
	}
}

// CheckMessage returns the highest-severity pattern matching text, or nil
func (s *Service) CheckMessage(ctx context.Context, chatID int64, text string) *domain.Match {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	patterns, err := s.repo.ListCandidates(ctx, chatID)
	if err != nil {
		slog.Error("Failed to load blocklist, skipping check", "chat_id", chatID, "error", err)
		return nil
	}
	if len(patterns) == 0 {
		return nil
	}

	normalized := normalize(text)
	for _, p := range patterns {
		if s.matcher.matches(p, normalized) {
			return &domain.Match{
				PatternID:       p.ID,
				Pattern:         p.Pattern,
				Action:          p.Action,
				DurationMinutes: p.ActionDurationMinutes,
				Severity:        p.Severity,
			}
		}
	}
	return nil
}

// ResolveAction returns the punishment for a match, falling back to the
// chat's default blocklist action when the pattern has none
func (s *Service) ResolveAction(match *domain.Match, cfg chatconfig.ModerationConfig) (punishment.PunishmentType, *int) {
	if match.Action != nil {
		return *match.Action, match.DurationMinutes
	}
	return cfg.DefaultBlocklistAction, match.DurationMinutes
}

// AddPattern stores a new pattern
func (s *Service) AddPattern(ctx context.Context, params AddPatternParams) (*domain.Pattern, error) {
	text := strings.TrimSpace(params.Pattern)
	if text == "" || len(text) > maxPatternLength {
		return nil, oops.With("pattern", params.Pattern).Wrap(errors.ErrInvalidPattern)
	}
	if !params.MatchType.IsValid() {
		return nil, oops.With("match_type", params.MatchType).Wrap(errors.ErrInvalidPattern)
	}
	if params.MatchType == domain.MatchTypeWildcard && countWildcards(text) > domain.MaxWildcards {
		return nil, oops.
			With("pattern", text, "wildcards", countWildcards(text), "max", domain.MaxWildcards).
			Wrap(errors.ErrInvalidPattern)
	}
	if params.Action != nil && !params.Action.IsValid() {
		return nil, oops.With("action", *params.Action).Wrap(errors.ErrInvalidPattern)
	}

	pattern := &domain.Pattern{
		ChatID:                params.ChatID,
		Pattern:               text,
		MatchType:             params.MatchType,
		Action:                params.Action,
		ActionDurationMinutes: params.DurationMinutes,
		Severity:              params.Severity,
		CreatedBy:             params.CreatedBy,
	}

	created, err := s.repo.Create(ctx, pattern)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, oops.With("chat_id", params.ChatID, "pattern", text).Wrap(errors.ErrPatternExists)
	}

	details := map[string]string{
		"pattern":    text,
		"match_type": params.MatchType.String(),
		"severity":   strconv.Itoa(params.Severity),
	}
	if params.Action != nil {
		details["action"] = params.Action.String()
	}
	s.log(params.ChatID, params.CreatedBy, auditDomain.ActionTypeBlocklistAdded, details)

	return pattern, nil
}

// RemovePattern deletes a pattern from the chat, or from the global list when
// chatID is nil
func (s *Service) RemovePattern(ctx context.Context, chatID *int64, actorID int64, pattern string) error {
	text := strings.TrimSpace(pattern)
	removed, err := s.repo.Delete(ctx, chatID, text)
	if err != nil {
		return err
	}
	if !removed {
		return oops.With("chat_id", chatID, "pattern", text).Wrap(errors.ErrPatternNotFound)
	}

	s.log(chatID, actorID, auditDomain.ActionTypeBlocklistRemoved, map[string]string{"pattern": text})
	return nil
}

// ListPatterns returns the chat's own patterns, or the global ones when
// chatID is nil
func (s *Service) ListPatterns(ctx context.Context, chatID *int64) ([]domain.Pattern, error) {
	return s.repo.List(ctx, chatID)
}

// log records chat-scoped changes; global patterns have no log channel
func (s *Service) log(chatID *int64, actorID int64, action auditDomain.ActionType, details map[string]string) {
	if chatID == nil {
		slog.Info("Global blocklist updated", "action", action, "actor_id", actorID, "pattern", details["pattern"])
		return
	}
	s.audit.LogAction(auditDomain.Entry{
		ChatID:    *chatID,
		Action:    action,
		ActorID:   actorID,
		Details:   details,
		Timestamp: time.Now(),
	})
}

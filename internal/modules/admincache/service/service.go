package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/chat-moderator/internal/modules/admincache/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/admincache/repository"
	"github.com/reshetovitsme/chat-moderator/internal/shared/metrics"
	"github.com/samber/lo"
)

// AdministratorLister is the authoritative source of a chat's administrators
type AdministratorLister interface {
	ListAdministrators(ctx context.Context, chatID int64) ([]int64, error)
}

// Service answers admin checks from a TTL cache over the platform
type Service struct {
	lister AdministratorLister
	store  repository.Store
	ttl    time.Duration
	now    func() time.Time
}

// New creates an admin cache; a non-positive ttl selects domain.DefaultTTL
func New(lister AdministratorLister, store repository.Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultTTL
	}
	return &Service{
		lister: lister,
		store:  store,
		ttl:    ttl,
		now:    time.Now,
	}
}

// IsAdmin reports whether userID administers chatID. forceRefresh bypasses
// the cache and must be used for security sensitive checks. Lookup failures
// answer false.
func (s *Service) IsAdmin(ctx context.Context, userID, chatID int64, forceRefresh bool) bool {
	if !forceRefresh {
		entry, ok, err := s.store.Get(ctx, chatID, userID)
		if err != nil {
			slog.Warn("Admin cache read failed", "chat_id", chatID, "user_id", userID, "error", err)
		}
		if ok && entry.Valid(s.now()) {
			metrics.AdminCacheLookups.WithLabelValues("hit").Inc()
			return entry.IsAdmin
		}
		metrics.AdminCacheLookups.WithLabelValues("miss").Inc()
	} else {
		metrics.AdminCacheLookups.WithLabelValues("forced").Inc()
	}

	admins, err := s.lister.ListAdministrators(ctx, chatID)
	if err != nil {
		metrics.AdminCacheLookups.WithLabelValues("oracle_error").Inc()
		slog.Error("Failed to list chat administrators", "chat_id", chatID, "user_id", userID, "error", err)
		return false
	}

	isAdmin := lo.Contains(admins, userID)

	now := s.now()
	if err := s.store.Set(ctx, domain.Entry{
		UserID:    userID,
		ChatID:    chatID,
		IsAdmin:   isAdmin,
		CachedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}); err != nil {
		slog.Warn("Failed to cache admin status", "chat_id", chatID, "user_id", userID, "error", err)
	}

	return isAdmin
}

// Invalidate forgets the cached answer for a user, e.g. after a promotion
func (s *Service) Invalidate(ctx context.Context, chatID, userID int64) {
	if err := s.store.Delete(ctx, chatID, userID); err != nil {
		slog.Warn("Failed to invalidate admin cache entry", "chat_id", chatID, "user_id", userID, "error", err)
	}
}

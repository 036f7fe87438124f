package service

import (
	"context"
	"errors"
	"testing"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/detector"
	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/repository"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/database"
	sharedErrors "github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/samber/lo"
)

type fakeAudit struct {
	entries []auditDomain.Entry
}

func (f *fakeAudit) LogAction(entry auditDomain.Entry) {
	f.entries = append(f.entries, entry)
}

type fakeSettings struct {
	lockWarns map[int64]bool
}

func (f *fakeSettings) SetLockWarns(_ context.Context, chatID, _ int64, enabled bool) error {
	f.lockWarns[chatID] = enabled
	return nil
}

func newTestService(t *testing.T, registry *detector.Registry) (*Service, *fakeAudit, *fakeSettings) {
	t.Helper()
	db, err := database.OpenMemory(t.Name(), &domain.ChatLocks{}, &domain.AllowlistEntry{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	audit := &fakeAudit{}
	settings := &fakeSettings{lockWarns: map[int64]bool{}}
	if registry == nil {
		registry = detector.DefaultRegistry()
	}
	return New(repository.NewGormStorage(db), registry, settings, audit), audit, settings
}

func linkMessage(link string) *message.Message {
	return &message.Message{
		ID:          7,
		ChatID:      1,
		From:        &message.Sender{ID: 42},
		ContentType: message.ContentTypeText,
		Text:        "check " + link,
		Entities:    []message.Entity{{Kind: message.EntityKindUrl, Value: link}},
	}
}

func TestEvaluate_NoLocksNeverViolates(t *testing.T) {
	s, _, _ := newTestService(t, nil)
	ctx := context.Background()

	msgs := []*message.Message{
		linkMessage("https://spam.example"),
		{ChatID: 1, ContentType: message.ContentTypePhoto},
		{ChatID: 1, Forward: &message.Forward{Kind: message.ForwardKindChannel}},
	}
	for _, msg := range msgs {
		if v := s.Evaluate(ctx, msg, 1); v != nil {
			t.Errorf("expected no violation without locks, got %+v", v)
		}
	}
}

func TestEvaluate_URLLock(t *testing.T) {
	s, _, _ := newTestService(t, nil)
	ctx := context.Background()

	if err := s.SetLock(ctx, 1, 99, domain.LockTypeUrl, true, lo.ToPtr("no links")); err != nil {
		t.Fatalf("SetLock: %v", err)
	}

	v := s.Evaluate(ctx, linkMessage("https://spam.example"), 1)
	if v == nil || v.LockType != domain.LockTypeUrl {
		t.Fatalf("expected url violation, got %+v", v)
	}
	if v.Reason == nil || *v.Reason != "no links" {
		t.Errorf("expected lock reason to be carried, got %v", v.Reason)
	}

	if err := s.AddAllowlist(ctx, 1, 99, domain.AllowlistTypeDomain, "Example.com"); err != nil {
		t.Fatalf("AddAllowlist: %v", err)
	}
	if v := s.Evaluate(ctx, linkMessage("https://example.com/page"), 1); v != nil {
		t.Errorf("expected allowlisted domain to pass, got %+v", v)
	}
	if v := s.Evaluate(ctx, linkMessage("https://example.com/page"), 2); v != nil {
		t.Errorf("locks must not leak across chats, got %+v", v)
	}
}

func TestEvaluate_FirstViolationInStableOrder(t *testing.T) {
	s, _, _ := newTestService(t, nil)
	ctx := context.Background()

	for _, lt := range []domain.LockType{domain.LockTypeUrl, domain.LockTypeText, domain.LockTypeForward} {
		if err := s.SetLock(ctx, 1, 99, lt, true, nil); err != nil {
			t.Fatalf("SetLock: %v", err)
		}
	}

	msg := linkMessage("https://spam.example")
	msg.Forward = &message.Forward{Kind: message.ForwardKindUser}

	for i := 0; i < 10; i++ {
		v := s.Evaluate(ctx, msg, 1)
		if v == nil || v.LockType != domain.LockTypeForward {
			t.Fatalf("expected forward (first in order), got %+v", v)
		}
	}
}

func TestEvaluate_UnregisteredTypeIsSkipped(t *testing.T) {
	registry := detector.NewRegistry(detector.URL())
	s, _, _ := newTestService(t, registry)
	ctx := context.Background()

	if err := s.SetLock(ctx, 1, 99, domain.LockTypePhoto, true, nil); err != nil {
		t.Fatalf("SetLock: %v", err)
	}
	if err := s.SetLock(ctx, 1, 99, domain.LockTypeUrl, true, nil); err != nil {
		t.Fatalf("SetLock: %v", err)
	}

	if v := s.Evaluate(ctx, &message.Message{ChatID: 1, ContentType: message.ContentTypePhoto}, 1); v != nil {
		t.Errorf("expected unregistered photo lock to be skipped, got %+v", v)
	}
	if v := s.Evaluate(ctx, linkMessage("https://x.org"), 1); v == nil {
		t.Error("expected registered url lock to still apply")
	}
}

func TestSetLock(t *testing.T) {
	s, audit, _ := newTestService(t, nil)
	ctx := context.Background()

	if err := s.SetLock(ctx, 1, 99, domain.LockType("teleport"), true, nil); !errors.Is(err, sharedErrors.ErrUnknownLockType) {
		t.Fatalf("expected ErrUnknownLockType, got %v", err)
	}

	if err := s.SetLock(ctx, 1, 99, domain.LockTypeSticker, true, nil); err != nil {
		t.Fatalf("SetLock: %v", err)
	}
	if !s.IsLockActive(ctx, 1, domain.LockTypeSticker) {
		t.Fatal("expected sticker lock to be active")
	}
	if err := s.SetLock(ctx, 1, 99, domain.LockTypeSticker, false, nil); err != nil {
		t.Fatalf("SetLock: %v", err)
	}
	if len(s.GetActiveLocks(ctx, 1)) != 0 {
		t.Fatal("expected no active locks after disabling")
	}

	if len(audit.entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(audit.entries))
	}
	if audit.entries[0].Action != auditDomain.ActionTypeLockEnabled || audit.entries[1].Action != auditDomain.ActionTypeLockDisabled {
		t.Errorf("unexpected audit actions %s, %s", audit.entries[0].Action, audit.entries[1].Action)
	}
	if audit.entries[0].Details["category"] != domain.LockCategoryContent.String() {
		t.Errorf("expected content category, got %q", audit.entries[0].Details["category"])
	}
}

func TestSetLockWarns_Delegates(t *testing.T) {
	s, _, settings := newTestService(t, nil)

	if err := s.SetLockWarns(context.Background(), 1, 99, false); err != nil {
		t.Fatalf("SetLockWarns: %v", err)
	}
	if enabled, ok := settings.lockWarns[1]; !ok || enabled {
		t.Errorf("expected lock warns disabled in settings, got %v (set=%v)", enabled, ok)
	}
}

func TestAllowlist(t *testing.T) {
	s, audit, _ := newTestService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		typ     domain.AllowlistType
		pattern string
		wantErr error
	}{
		{name: "domain", typ: domain.AllowlistTypeDomain, pattern: "https://www.Example.com/path"},
		{name: "duplicate after normalization", typ: domain.AllowlistTypeDomain, pattern: "example.com", wantErr: sharedErrors.ErrAllowlistExists},
		{name: "command", typ: domain.AllowlistTypeCommand, pattern: "/Rules@MyBot"},
		{name: "empty", typ: domain.AllowlistTypeUrl, pattern: "   ", wantErr: sharedErrors.ErrInvalidAllowlist},
		{name: "unknown type", typ: domain.AllowlistType("regex"), pattern: "x", wantErr: sharedErrors.ErrInvalidAllowlist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddAllowlist(ctx, 1, 99, tt.typ, tt.pattern)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("AddAllowlist: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	dc := s.BuildDetectionContext(ctx, 1)
	if _, ok := dc.AllowlistedDomains["example.com"]; !ok {
		t.Errorf("expected normalized domain in context, got %v", dc.AllowlistedDomains)
	}
	if _, ok := dc.AllowlistedCommands["rules"]; !ok {
		t.Errorf("expected normalized command in context, got %v", dc.AllowlistedCommands)
	}

	if err := s.RemoveAllowlist(ctx, 1, 99, domain.AllowlistTypeCommand, "rules"); err != nil {
		t.Fatalf("RemoveAllowlist: %v", err)
	}
	if err := s.RemoveAllowlist(ctx, 1, 99, domain.AllowlistTypeCommand, "rules"); !errors.Is(err, sharedErrors.ErrAllowlistNotFound) {
		t.Fatalf("expected ErrAllowlistNotFound, got %v", err)
	}

	entries, err := s.ListAllowlist(ctx, 1)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d err=%v", len(entries), err)
	}

	actions := lo.Map(audit.entries, func(e auditDomain.Entry, _ int) auditDomain.ActionType { return e.Action })
	want := []auditDomain.ActionType{
		auditDomain.ActionTypeAllowlistAdded,
		auditDomain.ActionTypeAllowlistAdded,
		auditDomain.ActionTypeAllowlistRemoved,
	}
	if len(actions) != len(want) {
		t.Fatalf("audit actions = %v, want %v", actions, want)
	}
}

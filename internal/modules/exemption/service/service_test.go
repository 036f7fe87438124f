package service

import (
	"context"
	"errors"
	"testing"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/exemption/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/exemption/repository"
	lockDomain "github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/database"
	sharedErrors "github.com/reshetovitsme/chat-moderator/internal/shared/errors"
	"github.com/samber/lo"
)

const chatID = int64(-100)

type fakeAdmins struct {
	admins map[int64]bool
	calls  int
}

func (f *fakeAdmins) IsAdmin(_ context.Context, userID, _ int64, _ bool) bool {
	f.calls++
	return f.admins[userID]
}

type fakeLocks struct {
	active map[lockDomain.LockType]bool
}

func (f *fakeLocks) IsLockActive(_ context.Context, _ int64, lockType lockDomain.LockType) bool {
	return f.active[lockType]
}

type fakeAudit struct {
	entries []auditDomain.Entry
}

func (f *fakeAudit) LogAction(entry auditDomain.Entry) {
	f.entries = append(f.entries, entry)
}

func newTestService(t *testing.T) (*Service, *fakeAdmins, *fakeLocks, *fakeAudit) {
	t.Helper()
	db, err := database.OpenMemory(t.Name(), &domain.Exemption{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	admins := &fakeAdmins{admins: map[int64]bool{}}
	locks := &fakeLocks{active: map[lockDomain.LockType]bool{}}
	audit := &fakeAudit{}
	return New(repository.NewGormStorage(db), admins, locks, audit), admins, locks, audit
}

func userMessage(userID int64) *message.Message {
	return &message.Message{ChatID: chatID, From: &message.Sender{ID: userID}, ContentType: message.ContentTypeText, Text: "hi"}
}

func TestIsExempt(t *testing.T) {
	ctx := context.Background()

	t.Run("admin is exempt", func(t *testing.T) {
		s, admins, _, _ := newTestService(t)
		admins.admins[1] = true
		msg := userMessage(1)
		if !s.IsExempt(ctx, msg, chatID, msg.SenderID()) {
			t.Error("expected admin to be exempt")
		}
	})

	t.Run("anonymous admin is exempt", func(t *testing.T) {
		s, _, _, _ := newTestService(t)
		msg := &message.Message{ChatID: chatID, SenderChat: &message.SenderChat{ID: chatID}}
		if !s.IsExempt(ctx, msg, chatID, nil) {
			t.Error("expected message sent as the group to be exempt")
		}
	})

	t.Run("regular user is not exempt", func(t *testing.T) {
		s, _, _, _ := newTestService(t)
		msg := userMessage(2)
		if s.IsExempt(ctx, msg, chatID, msg.SenderID()) {
			t.Error("expected regular user not to be exempt")
		}
	})

	t.Run("exempted bot by username", func(t *testing.T) {
		s, _, _, _ := newTestService(t)
		if err := s.AddExemption(ctx, chatID, 1, nil, domain.ExemptionTypeBot, "@HelperBot"); err != nil {
			t.Fatalf("AddExemption: %v", err)
		}
		msg := &message.Message{ChatID: chatID, From: &message.Sender{ID: 5, Username: "helperbot", IsBot: true}}
		if !s.IsExempt(ctx, msg, chatID, msg.SenderID()) {
			t.Error("expected exempted bot to be exempt")
		}

		human := &message.Message{ChatID: chatID, From: &message.Sender{ID: 6, Username: "helperbot"}}
		if s.IsExempt(ctx, human, chatID, human.SenderID()) {
			t.Error("bot exemptions must not cover human accounts")
		}
	})

	t.Run("linked channel copy while anonchannel unlocked", func(t *testing.T) {
		s, _, locks, _ := newTestService(t)
		msg := &message.Message{
			ChatID:             chatID,
			SenderChat:         &message.SenderChat{ID: -200, IsChannel: true},
			IsAutomaticForward: true,
		}
		if !s.IsExempt(ctx, msg, chatID, nil) {
			t.Error("expected automatic forward to be exempt")
		}

		locks.active[lockDomain.LockTypeAnonchannel] = true
		if s.IsExempt(ctx, msg, chatID, nil) {
			t.Error("expected automatic forward to be enforced while anonchannel is locked")
		}
	})

	t.Run("user exemption global or lock specific", func(t *testing.T) {
		s, _, _, _ := newTestService(t)
		if err := s.AddExemption(ctx, chatID, 1, nil, domain.ExemptionTypeUser, "7"); err != nil {
			t.Fatalf("AddExemption: %v", err)
		}
		if err := s.AddExemption(ctx, chatID, 1, lo.ToPtr(lockDomain.LockTypeUrl), domain.ExemptionTypeUser, "8"); err != nil {
			t.Fatalf("AddExemption: %v", err)
		}

		for _, id := range []int64{7, 8} {
			msg := userMessage(id)
			if !s.IsExempt(ctx, msg, chatID, msg.SenderID()) {
				t.Errorf("expected user %d to be exempt", id)
			}
		}
		other := userMessage(9)
		if s.IsExempt(ctx, other, -999, other.SenderID()) {
			t.Error("exemptions must not leak across chats")
		}
	})
}

func TestExemptionCRUD(t *testing.T) {
	s, _, _, audit := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		lockType *lockDomain.LockType
		typ      domain.ExemptionType
		value    string
		wantErr  error
	}{
		{name: "user", typ: domain.ExemptionTypeUser, value: "42"},
		{name: "duplicate user", typ: domain.ExemptionTypeUser, value: " 42 ", wantErr: sharedErrors.ErrExemptionExists},
		{name: "non numeric user", typ: domain.ExemptionTypeUser, value: "bob", wantErr: sharedErrors.ErrInvalidExemption},
		{name: "empty bot", typ: domain.ExemptionTypeBot, value: "@", wantErr: sharedErrors.ErrInvalidExemption},
		{name: "unknown lock", lockType: lo.ToPtr(lockDomain.LockType("teleport")), typ: domain.ExemptionTypeUser, value: "1", wantErr: sharedErrors.ErrUnknownLockType},
		{name: "scoped bot", lockType: lo.ToPtr(lockDomain.LockTypeCommands), typ: domain.ExemptionTypeBot, value: "GroupHelpBot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddExemption(ctx, chatID, 1, tt.lockType, tt.typ, tt.value)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("AddExemption: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	list, err := s.ListExemptions(ctx, chatID)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 exemptions, got %d err=%v", len(list), err)
	}

	if err := s.RemoveExemption(ctx, chatID, 1, lo.ToPtr(lockDomain.LockTypeCommands), domain.ExemptionTypeBot, "@grouphelpbot"); err != nil {
		t.Fatalf("RemoveExemption: %v", err)
	}
	if err := s.RemoveExemption(ctx, chatID, 1, nil, domain.ExemptionTypeBot, "grouphelpbot"); !errors.Is(err, sharedErrors.ErrExemptionNotFound) {
		t.Fatalf("expected ErrExemptionNotFound, got %v", err)
	}

	if len(audit.entries) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(audit.entries))
	}
	if audit.entries[2].Action != auditDomain.ActionTypeExemptionRemoved || audit.entries[2].Details["scope"] != "commands" {
		t.Errorf("unexpected removal entry %+v", audit.entries[2])
	}
}

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	auditDomain "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	"github.com/reshetovitsme/chat-moderator/internal/modules/punishment/repository"
	"github.com/reshetovitsme/chat-moderator/internal/shared/database"
	"github.com/samber/lo"
)

type call struct {
	method string
	until  *time.Time
}

type fakePlatform struct {
	calls []call
	err   error
}

func (f *fakePlatform) RestrictMember(_ context.Context, _, _ int64, until *time.Time) error {
	f.calls = append(f.calls, call{method: "restrict", until: until})
	return f.err
}

func (f *fakePlatform) UnrestrictMember(context.Context, int64, int64) error {
	f.calls = append(f.calls, call{method: "unrestrict"})
	return f.err
}

func (f *fakePlatform) BanMember(_ context.Context, _, _ int64, until *time.Time) error {
	f.calls = append(f.calls, call{method: "ban", until: until})
	return f.err
}

func (f *fakePlatform) UnbanMember(context.Context, int64, int64) error {
	f.calls = append(f.calls, call{method: "unban"})
	return f.err
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []auditDomain.Entry
}

func (f *fakeAudit) LogAction(entry auditDomain.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
}

func newTestExecutor(t *testing.T, platform *fakePlatform) (*Executor, *fakeAudit, time.Time) {
	t.Helper()
	db, err := database.OpenMemory(t.Name(), &domain.Record{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	audit := &fakeAudit{}
	e := New(platform, repository.NewGormStorage(db), audit)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }
	return e, audit, now
}

func TestExecutePunishment(t *testing.T) {
	hour := time.Hour

	tests := []struct {
		name      string
		typ       domain.PunishmentType
		duration  *time.Duration
		calls     []string
		wantUntil *time.Duration
	}{
		{name: "nothing makes no platform call", typ: domain.PunishmentTypeNothing},
		{name: "warn makes no platform call", typ: domain.PunishmentTypeWarn},
		{name: "timed mute", typ: domain.PunishmentTypeMute, duration: &hour, calls: []string{"restrict"}, wantUntil: &hour},
		{name: "permanent mute", typ: domain.PunishmentTypeMute, calls: []string{"restrict"}},
		{name: "timed ban", typ: domain.PunishmentTypeBan, duration: &hour, calls: []string{"ban"}, wantUntil: &hour},
		{name: "short mute is clamped", typ: domain.PunishmentTypeMute, duration: lo.ToPtr(5 * time.Second), calls: []string{"restrict"}, wantUntil: lo.ToPtr(MinRestriction)},
		{name: "kick bans then unbans", typ: domain.PunishmentTypeKick, calls: []string{"ban", "unban"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := &fakePlatform{}
			e, audit, now := newTestExecutor(t, platform)

			ok := e.ExecutePunishment(context.Background(), ExecuteParams{
				ChatID: 1, UserID: 2, IssuedByID: 3,
				Type: tt.typ, Duration: tt.duration,
				Reason: "test", Source: domain.SourceManual,
			})
			if !ok {
				t.Fatal("expected success")
			}

			methods := lo.Map(platform.calls, func(c call, _ int) string { return c.method })
			if len(methods) != len(tt.calls) {
				t.Fatalf("calls = %v, want %v", methods, tt.calls)
			}
			for i := range methods {
				if methods[i] != tt.calls[i] {
					t.Fatalf("calls = %v, want %v", methods, tt.calls)
				}
			}

			if len(platform.calls) > 0 {
				got := platform.calls[0].until
				switch {
				case tt.wantUntil == nil && got != nil:
					t.Errorf("expected indefinite action, got until %v", got)
				case tt.wantUntil != nil && (got == nil || !got.Equal(now.Add(*tt.wantUntil))):
					t.Errorf("until = %v, want %v", got, now.Add(*tt.wantUntil))
				}
			}

			records, err := e.ListRecent(context.Background(), 1, 10)
			if err != nil {
				t.Fatalf("ListRecent: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(records))
			}
			if records[0].Action != tt.typ.Action() || !records[0].Success {
				t.Errorf("unexpected record %+v", records[0])
			}

			if len(audit.entries) != 1 {
				t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
			}
			if audit.entries[0].Action.String() != tt.typ.String() {
				t.Errorf("audit action = %s, want %s", audit.entries[0].Action, tt.typ)
			}
		})
	}
}

func TestExecutePunishment_PlatformFailureIsRecorded(t *testing.T) {
	platform := &fakePlatform{err: errors.New("forbidden")}
	e, audit, _ := newTestExecutor(t, platform)

	ok := e.ExecutePunishment(context.Background(), ExecuteParams{
		ChatID: 1, UserID: 2, Type: domain.PunishmentTypeBan, Source: domain.SourceAutomatic,
	})
	if ok {
		t.Fatal("expected failure")
	}

	records, err := e.ListRecent(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(records) != 1 || records[0].Success {
		t.Fatalf("expected one failed record, got %+v", records)
	}
	if audit.entries[0].Details["success"] != "false" {
		t.Errorf("expected audit entry to report failure, got %v", audit.entries[0].Details)
	}
}

func TestKick_UnbanSkippedWhenBanFails(t *testing.T) {
	platform := &fakePlatform{err: errors.New("not enough rights")}
	e, _, _ := newTestExecutor(t, platform)

	if e.ExecutePunishment(context.Background(), ExecuteParams{ChatID: 1, UserID: 2, Type: domain.PunishmentTypeKick}) {
		t.Fatal("expected failure")
	}
	if len(platform.calls) != 1 {
		t.Fatalf("expected only the ban call, got %d calls", len(platform.calls))
	}
}

func TestUnmuteAndUnban(t *testing.T) {
	platform := &fakePlatform{}
	e, audit, _ := newTestExecutor(t, platform)
	ctx := context.Background()

	if !e.Unmute(ctx, 1, 2, 3, "appeal") {
		t.Fatal("Unmute failed")
	}
	if !e.Unban(ctx, 1, 2, 3, "appeal") {
		t.Fatal("Unban failed")
	}

	records, err := e.ListRecent(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	actions := lo.Map(records, func(r domain.Record, _ int) domain.ActionType { return r.Action })
	if !lo.Contains(actions, domain.ActionTypeUnmute) || !lo.Contains(actions, domain.ActionTypeUnban) {
		t.Errorf("expected unmute and unban records, got %v", actions)
	}
	if audit.entries[0].Action != auditDomain.ActionTypeUnmute || audit.entries[1].Action != auditDomain.ActionTypeUnban {
		t.Errorf("unexpected audit actions %s, %s", audit.entries[0].Action, audit.entries[1].Action)
	}
}

func TestRecordWarningAction_NoAuditEntry(t *testing.T) {
	platform := &fakePlatform{}
	e, audit, _ := newTestExecutor(t, platform)
	ctx := context.Background()

	e.RecordWarningAction(ctx, 1, 2, 3, domain.ActionTypeUnwarn, "pardon", domain.SourceManual, "")

	records, err := e.ListRecent(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(records) != 1 || records[0].Action != domain.ActionTypeUnwarn {
		t.Fatalf("expected one unwarn record, got %+v", records)
	}
	if len(audit.entries) != 0 {
		t.Errorf("expected no audit entries, got %d", len(audit.entries))
	}
	if len(platform.calls) != 0 {
		t.Errorf("expected no platform calls, got %d", len(platform.calls))
	}
}

func TestExecutePunishment_UnknownTypeIsRecordedAsFailure(t *testing.T) {
	platform := &fakePlatform{}
	e, audit, _ := newTestExecutor(t, platform)
	d := time.Hour

	ok := e.ExecutePunishment(context.Background(), ExecuteParams{
		ChatID: 1, UserID: 2, IssuedByID: 3, Type: domain.PunishmentType("timeout"), Duration: &d,
		Reason: "typo in config", Source: domain.SourceManual,
	})
	if ok {
		t.Fatal("expected unknown type to fail")
	}
	if len(platform.calls) != 0 {
		t.Errorf("expected no platform calls, got %+v", platform.calls)
	}

	records, err := e.ListRecent(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(records) != 1 || records[0].Success || records[0].Action != domain.ActionType("timeout") {
		t.Fatalf("expected one failed timeout record, got %+v", records)
	}
	if records[0].DurationSeconds != nil {
		t.Errorf("expected no duration, got %d", *records[0].DurationSeconds)
	}
	if len(audit.entries) != 1 || audit.entries[0].Details["success"] != "false" {
		t.Errorf("expected one failed audit entry, got %+v", audit.entries)
	}
}

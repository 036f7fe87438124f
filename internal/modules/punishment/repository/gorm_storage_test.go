package repository

import (
	"context"
	"testing"
	"time"

	"github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/database"
)

func newTestStorage(t *testing.T) Repository {
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
	return NewGormStorage(db)
}

func TestAppend_AssignsIDAndTimestamp(t *testing.T) {
	repo := newTestStorage(t)
	ctx := context.Background()

	rec := &domain.Record{ChatID: 1, UserID: 2, IssuedByID: 3, Action: domain.ActionTypeMute, Source: domain.SourceManual, Success: true}
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestListRecent_NewestFirstAndScopedToChat(t *testing.T) {
	repo := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i, action := range []domain.ActionType{domain.ActionTypeWarn, domain.ActionTypeMute, domain.ActionTypeBan} {
		rec := &domain.Record{
			ChatID: 1, UserID: 2, Action: action, Source: domain.SourceAutomatic,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := repo.Append(ctx, &domain.Record{ChatID: 9, UserID: 2, Action: domain.ActionTypeKick, Source: domain.SourceManual}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	records, err := repo.ListRecent(ctx, 1, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Action != domain.ActionTypeBan || records[1].Action != domain.ActionTypeMute {
		t.Errorf("unexpected order: %s, %s", records[0].Action, records[1].Action)
	}
}

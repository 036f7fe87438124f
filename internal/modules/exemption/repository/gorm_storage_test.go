package repository

import (
	"context"
	"testing"

	"github.com/reshetovitsme/chat-moderator/internal/modules/exemption/domain"
	"github.com/reshetovitsme/chat-moderator/internal/shared/database"
	"github.com/samber/lo"
)

func TestExemptions(t *testing.T) {
	db, err := database.OpenMemory(t.Name(), &domain.Exemption{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	repo := NewGormStorage(db)
	ctx := context.Background()

	global := &domain.Exemption{ChatID: 1, ExemptionType: domain.ExemptionTypeUser, Value: "42"}
	if created, err := repo.Add(ctx, global); err != nil || !created {
		t.Fatalf("Add: created=%v err=%v", created, err)
	}

	// NULL lock types must still be deduplicated
	if created, err := repo.Add(ctx, &domain.Exemption{ChatID: 1, ExemptionType: domain.ExemptionTypeUser, Value: "42"}); err != nil || created {
		t.Fatalf("expected duplicate global exemption to be ignored, created=%v err=%v", created, err)
	}

	scoped := &domain.Exemption{ChatID: 1, LockType: lo.ToPtr("url"), ExemptionType: domain.ExemptionTypeUser, Value: "42"}
	if created, err := repo.Add(ctx, scoped); err != nil || !created {
		t.Fatalf("Add scoped: created=%v err=%v", created, err)
	}

	list, err := repo.ListByChat(ctx, 1)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 exemptions, got %d err=%v", len(list), err)
	}
	if !list[0].IsGlobal() || list[1].IsGlobal() {
		t.Errorf("unexpected global flags: %v, %v", list[0].IsGlobal(), list[1].IsGlobal())
	}

	removed, err := repo.Remove(ctx, 1, nil, domain.ExemptionTypeUser, "42")
	if err != nil || !removed {
		t.Fatalf("Remove: removed=%v err=%v", removed, err)
	}

	list, _ = repo.ListByChat(ctx, 1)
	if len(list) != 1 || list[0].LockType == nil || *list[0].LockType != "url" {
		t.Fatalf("expected only the scoped exemption to remain, got %+v", list)
	}
}

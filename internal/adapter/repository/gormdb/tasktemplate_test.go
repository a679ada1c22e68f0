package gormdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/pkg/id"
)

func TestTaskTemplate_ListOrdered(t *testing.T) {
	f := newFixture(t)
	repo := NewTaskTemplateRepository(f.db)
	ctx := context.Background()

	f.template(t, "third", 3)
	f.template(t, "first", 1)
	f.template(t, "second", 2)

	got, err := repo.ListByWorkspace(ctx, f.workspace.ID)
	if err != nil {
		t.Fatalf("ListByWorkspace: %v", err)
	}
	if len(got) != 3 || got[0].Title != "first" || got[1].Title != "second" || got[2].Title != "third" {
		t.Fatalf("unexpected order: %+v", got)
	}

	other, _ := repo.ListByWorkspace(ctx, id.NewID32())
	if len(other) != 0 {
		t.Fatalf("templates leaked across workspaces: %d", len(other))
	}
}

func TestTaskTemplate_CreateBatch(t *testing.T) {
	f := newFixture(t)
	repo := NewTaskTemplateRepository(f.db)
	ctx := context.Background()

	batch := []tasktemplate.TaskTemplate{
		{ID: id.NewID32(), WorkspaceID: f.workspace.ID, Title: "a", Role: tasktemplate.RoleAdvisor, Priority: tasktemplate.PriorityHigh, Order: 1},
		{ID: id.NewID32(), WorkspaceID: f.workspace.ID, Title: "b", Role: tasktemplate.RoleClient, Priority: tasktemplate.PriorityLow, Order: 2, AllowAttachments: true},
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if err := repo.CreateBatch(ctx, nil); err != nil {
		t.Fatalf("empty CreateBatch: %v", err)
	}
	got, err := repo.GetByID(ctx, f.workspace.ID, batch[1].ID)
	if err != nil || !got.AllowAttachments || got.Role != tasktemplate.RoleClient {
		t.Fatalf("GetByID: %+v, %v", got, err)
	}
}

func TestTaskTemplate_SeedMarker(t *testing.T) {
	f := newFixture(t)
	repo := NewTaskTemplateRepository(f.db)
	ctx := context.Background()

	if _, err := repo.GetSeedMarker(ctx, f.workspace.ID); !errors.Is(err, tasktemplate.ErrNotFound) {
		t.Fatalf("expected no marker, got %v", err)
	}

	first := time.Now().UTC().Add(-time.Hour)
	if err := repo.CreateSeedMarker(ctx, f.workspace.ID, first); err != nil {
		t.Fatalf("CreateSeedMarker: %v", err)
	}
	err := repo.CreateSeedMarker(ctx, f.workspace.ID, time.Now().UTC())
	if !errors.Is(err, tasktemplate.ErrAlreadySeeded) || !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("second CreateSeedMarker: got %v, want ErrAlreadySeeded", err)
	}

	m, err := repo.GetSeedMarker(ctx, f.workspace.ID)
	if err != nil {
		t.Fatalf("GetSeedMarker: %v", err)
	}
	if m.SeedCount != 1 {
		t.Fatalf("seed count = %d, want 1", m.SeedCount)
	}
}

func TestTaskTemplate_BumpSeedMarker(t *testing.T) {
	f := newFixture(t)
	repo := NewTaskTemplateRepository(f.db)
	ctx := context.Background()

	first := time.Now().UTC().Add(-time.Hour)
	if err := repo.BumpSeedMarker(ctx, f.workspace.ID, first); err != nil {
		t.Fatalf("BumpSeedMarker: %v", err)
	}
	if err := repo.BumpSeedMarker(ctx, f.workspace.ID, time.Now().UTC()); err != nil {
		t.Fatalf("BumpSeedMarker again: %v", err)
	}

	m, err := repo.GetSeedMarker(ctx, f.workspace.ID)
	if err != nil {
		t.Fatalf("GetSeedMarker: %v", err)
	}
	if m.SeedCount != 2 {
		t.Fatalf("seed count = %d, want 2", m.SeedCount)
	}
	if !m.SeededAt.After(first) {
		t.Fatalf("seeded_at not refreshed: %v", m.SeededAt)
	}
}

func TestTaskTemplate_Delete(t *testing.T) {
	f := newFixture(t)
	repo := NewTaskTemplateRepository(f.db)
	ctx := context.Background()

	tt := f.template(t, "gone", 1)
	if err := repo.Delete(ctx, f.workspace.ID, tt.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, f.workspace.ID, tt.ID); !errors.Is(err, tasktemplate.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

package gormdb

import (
	"context"
	"errors"
	"testing"

	"loandesk-backend/internal/domain/client"
	"loandesk-backend/pkg/id"
)

func TestClient_EmailScopedToWorkspace(t *testing.T) {
	f := newFixture(t)
	repo := NewClientRepository(f.db)
	ctx := context.Background()

	got, err := repo.GetByEmail(ctx, f.workspace.ID, "jane@example.com")
	if err != nil || got.ID != f.client.ID {
		t.Fatalf("GetByEmail: %+v, %v", got, err)
	}

	dup := &client.Client{ID: id.NewID32(), WorkspaceID: f.workspace.ID, Name: "Jane 2", Email: "jane@example.com"}
	if err := repo.Create(ctx, dup); !errors.Is(err, client.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken within the same workspace, got %v", err)
	}

	other := &client.Client{ID: id.NewID32(), WorkspaceID: id.NewID32(), Name: "Jane", Email: "jane@example.com"}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("same email in another workspace should be allowed: %v", err)
	}

	if _, err := repo.GetByID(ctx, other.WorkspaceID, f.client.ID); !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("client must not leak across workspaces, got %v", err)
	}
}

func TestClient_SaveAndDelete(t *testing.T) {
	f := newFixture(t)
	repo := NewClientRepository(f.db)
	ctx := context.Background()

	f.client.Phone = "+1 555 0100"
	if err := repo.Save(ctx, f.client); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ := repo.GetByID(ctx, f.workspace.ID, f.client.ID)
	if got.Phone != "+1 555 0100" {
		t.Fatalf("phone not updated: %q", got.Phone)
	}

	if err := repo.Delete(ctx, f.workspace.ID, f.client.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, f.workspace.ID, f.client.ID); !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("second delete should be not found, got %v", err)
	}
}

package gormdb

import (
	"context"
	"testing"
	"time"

	"loandesk-backend/internal/domain/task"
	"loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/pkg/id"
)

func makeTask(workspaceID, loanFileID, templateID string, order int) task.Task {
	return task.Task{
		ID: id.NewID32(), WorkspaceID: workspaceID, LoanFileID: loanFileID, TemplateID: templateID,
		Title: "task", AssigneeRole: tasktemplate.RoleStaff, Status: task.StatusPending,
		Priority: tasktemplate.PriorityNormal, DueDate: time.Now().UTC().Add(48 * time.Hour), Order: order,
	}
}

func TestTask_BatchListCount(t *testing.T) {
	f := newFixture(t)
	repo := NewTaskRepository(f.db)
	ctx := context.Background()

	lf := f.loanFile(t)
	tt := f.template(t, "Credit", 1)
	batch := []task.Task{
		makeTask(f.workspace.ID, lf.ID, tt.ID, 2),
		makeTask(f.workspace.ID, lf.ID, tt.ID, 1),
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.ListByLoanFile(ctx, f.workspace.ID, lf.ID)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListByLoanFile: %v, %v", got, err)
	}
	if got[0].Order != 1 || got[1].Order != 2 {
		t.Fatalf("not ordered: %d, %d", got[0].Order, got[1].Order)
	}
	if got[0].AssigneeUserID != nil {
		t.Fatalf("unassigned task came back with %v", *got[0].AssigneeUserID)
	}

	n, err := repo.CountByTemplate(ctx, tt.ID)
	if err != nil || n != 2 {
		t.Fatalf("CountByTemplate = %d, %v", n, err)
	}

	if err := repo.DeleteByLoanFiles(ctx, []string{lf.ID}); err != nil {
		t.Fatalf("DeleteByLoanFiles: %v", err)
	}
	n, _ = repo.CountByTemplate(ctx, tt.ID)
	if n != 0 {
		t.Fatalf("tasks left: %d", n)
	}
}

func TestTask_SyncWorkspaceFromLoanFiles(t *testing.T) {
	f := newFixture(t)
	repo := NewTaskRepository(f.db)
	ctx := context.Background()

	lf := f.loanFile(t)
	tt := f.template(t, "Credit", 1)

	blank := makeTask("", lf.ID, tt.ID, 1)
	drifted := makeTask(id.NewID32(), lf.ID, tt.ID, 2)
	fine := makeTask(f.workspace.ID, lf.ID, tt.ID, 3)
	orphan := makeTask("", id.NewID32(), tt.ID, 4)
	if err := repo.CreateBatch(ctx, []task.Task{blank, drifted, fine, orphan}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	n, err := repo.SyncWorkspaceFromLoanFiles(ctx)
	if err != nil {
		t.Fatalf("SyncWorkspaceFromLoanFiles: %v", err)
	}
	if n != 2 {
		t.Fatalf("rows fixed = %d, want 2", n)
	}
	got, _ := repo.ListByLoanFile(ctx, f.workspace.ID, lf.ID)
	if len(got) != 3 {
		t.Fatalf("tasks in workspace after sync = %d, want 3", len(got))
	}

	again, _ := repo.SyncWorkspaceFromLoanFiles(ctx)
	if again != 0 {
		t.Fatalf("second sync touched %d rows", again)
	}
}

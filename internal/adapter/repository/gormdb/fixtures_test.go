package gormdb

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"loandesk-backend/internal/domain/client"
	"loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/domain/loantype"
	"loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/internal/domain/workspace"
	"loandesk-backend/internal/testutil/dbtest"
	"loandesk-backend/pkg/id"
)

type fixture struct {
	db        *gorm.DB
	workspace *workspace.Workspace
	client    *client.Client
	loanType  *loantype.LoanType
}

// newFixture seeds one workspace with a client and a loan type.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := dbtest.Open(t)
	ctx := context.Background()

	ws := &workspace.Workspace{ID: id.NewID32(), Name: "Acme Lending", Slug: "acme-" + id.NewID32()[:8], OwnerID: id.NewID32()}
	if err := NewWorkspaceRepository(gdb).Create(ctx, ws); err != nil {
		t.Fatalf("seed workspace: %v", err)
	}
	c := &client.Client{ID: id.NewID32(), WorkspaceID: ws.ID, Name: "Jane Doe", Email: "jane@example.com"}
	if err := NewClientRepository(gdb).Create(ctx, c); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	lt := &loantype.LoanType{
		ID: id.NewID32(), WorkspaceID: ws.ID, Name: "Home Loan",
		Stages: []string{"Intake", "Review"}, Status: loantype.StatusActive,
	}
	if err := NewLoanTypeRepository(gdb).Create(ctx, lt); err != nil {
		t.Fatalf("seed loan type: %v", err)
	}
	return &fixture{db: gdb, workspace: ws, client: c, loanType: lt}
}

func (f *fixture) loanFile(t *testing.T) *loanfile.LoanFile {
	t.Helper()
	lf := &loanfile.LoanFile{
		ID: id.NewID32(), WorkspaceID: f.workspace.ID, LoanTypeID: f.loanType.ID,
		ClientID: f.client.ID, AdvisorID: id.NewID32(),
		Status: loanfile.StatusDraft, CurrentStage: "Intake",
	}
	if err := NewLoanFileRepository(f.db).Create(context.Background(), lf); err != nil {
		t.Fatalf("seed loan file: %v", err)
	}
	return lf
}

func (f *fixture) template(t *testing.T, title string, order int) *tasktemplate.TaskTemplate {
	t.Helper()
	tt := &tasktemplate.TaskTemplate{
		ID: id.NewID32(), WorkspaceID: f.workspace.ID, Title: title,
		Role: tasktemplate.RoleStaff, Priority: tasktemplate.PriorityNormal, DueInDays: 2, Order: order,
	}
	if err := NewTaskTemplateRepository(f.db).Create(context.Background(), tt); err != nil {
		t.Fatalf("seed template: %v", err)
	}
	return tt
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

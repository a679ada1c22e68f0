package provisioning

import (
	"context"

	"loandesk-backend/internal/domain/tasktemplate"
)

// Assignment is what a policy gets to decide who owns a new task.
type Assignment struct {
	WorkspaceID string
	LoanFileID  string
	ClientID    string
	AdvisorID   string
	Template    tasktemplate.TaskTemplate
}

// AssignmentPolicy returns the assignee user id, or nil to leave the task unassigned.
type AssignmentPolicy interface {
	Assignee(ctx context.Context, a Assignment) *string
}

type AssignFunc func(ctx context.Context, a Assignment) *string

func (f AssignFunc) Assignee(ctx context.Context, a Assignment) *string { return f(ctx, a) }

var (
	AssignAdvisor AssignmentPolicy = AssignFunc(func(_ context.Context, a Assignment) *string {
		advisor := a.AdvisorID
		return &advisor
	})
	Unassigned AssignmentPolicy = AssignFunc(func(context.Context, Assignment) *string { return nil })
)

type AssignmentTable map[tasktemplate.Role]AssignmentPolicy

func DefaultAssignments() AssignmentTable {
	return AssignmentTable{
		tasktemplate.RoleAdvisor: AssignAdvisor,
		tasktemplate.RoleStaff:   Unassigned,
		tasktemplate.RoleClient:  Unassigned,
	}
}

func (t AssignmentTable) resolve(ctx context.Context, a Assignment) *string {
	p, ok := t[a.Template.Role]
	if !ok {
		return nil
	}
	return p.Assignee(ctx, a)
}

package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/loanfile"
	domain "loandesk-backend/internal/domain/task"
	"loandesk-backend/internal/domain/workspace"
)

type Usecase struct {
	tasks   domain.Repository
	files   loanfile.Repository
	members workspace.Repository
	now     func() time.Time
}

func NewUsecase(tasks domain.Repository, files loanfile.Repository, members workspace.Repository) *Usecase {
	return &Usecase{tasks: tasks, files: files, members: members, now: time.Now}
}

func (u *Usecase) Get(ctx context.Context, workspaceID, taskID string) (*domain.Task, error) {
	return u.tasks.GetByID(ctx, workspaceID, taskID)
}

func (u *Usecase) ListByLoanFile(ctx context.Context, workspaceID, loanFileID string) ([]domain.Task, error) {
	if _, err := u.files.GetByID(ctx, workspaceID, loanFileID); err != nil {
		return nil, err
	}
	return u.tasks.ListByLoanFile(ctx, workspaceID, loanFileID)
}

// UpdateStatus stamps CompletedAt on completion and clears it otherwise.
func (u *Usecase) UpdateStatus(ctx context.Context, workspaceID, taskID string, status domain.Status) (*domain.Task, error) {
	if !status.Valid() {
		return nil, errs.Invalid("status", "must be pending, in_progress or completed")
	}
	t, err := u.tasks.GetByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status == status {
		return t, nil
	}
	t.Status = status
	if status == domain.StatusCompleted {
		at := u.now().UTC()
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	if err := u.tasks.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Reassign points the task at a workspace member, or clears the assignee
// when userID is nil or blank.
func (u *Usecase) Reassign(ctx context.Context, workspaceID, taskID string, userID *string) (*domain.Task, error) {
	t, err := u.tasks.GetByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	var assignee *string
	if userID != nil && strings.TrimSpace(*userID) != "" {
		uid := strings.TrimSpace(*userID)
		if _, err := u.members.GetMember(ctx, workspaceID, uid); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil, errs.Invalid("user_id", "is not a member of the workspace")
			}
			return nil, err
		}
		assignee = &uid
	}
	t.AssigneeUserID = assignee
	if err := u.tasks.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

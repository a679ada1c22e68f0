package taskmock

import (
	"context"

	domain "loandesk-backend/internal/domain/task"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn                func(ctx context.Context, ts []domain.Task) error
	GetByIDFn                    func(ctx context.Context, workspaceID, id string) (*domain.Task, error)
	ListByLoanFileFn             func(ctx context.Context, workspaceID, loanFileID string) ([]domain.Task, error)
	CountByTemplateFn            func(ctx context.Context, templateID string) (int64, error)
	SaveFn                       func(ctx context.Context, t *domain.Task) error
	DeleteByLoanFilesFn          func(ctx context.Context, loanFileIDs []string) error
	SyncWorkspaceFromLoanFilesFn func(ctx context.Context) (int64, error)
}

func (m *Repo) CreateBatch(ctx context.Context, ts []domain.Task) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, ts)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, workspaceID, id string) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, workspaceID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByLoanFile(ctx context.Context, workspaceID, loanFileID string) ([]domain.Task, error) {
	if m.ListByLoanFileFn != nil {
		return m.ListByLoanFileFn(ctx, workspaceID, loanFileID)
	}
	return nil, nil
}

func (m *Repo) CountByTemplate(ctx context.Context, templateID string) (int64, error) {
	if m.CountByTemplateFn != nil {
		return m.CountByTemplateFn(ctx, templateID)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Task) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) DeleteByLoanFiles(ctx context.Context, loanFileIDs []string) error {
	if m.DeleteByLoanFilesFn != nil {
		return m.DeleteByLoanFilesFn(ctx, loanFileIDs)
	}
	return nil
}

func (m *Repo) SyncWorkspaceFromLoanFiles(ctx context.Context) (int64, error) {
	if m.SyncWorkspaceFromLoanFilesFn != nil {
		return m.SyncWorkspaceFromLoanFilesFn(ctx)
	}
	return 0, nil
}

package loanfilemock

import (
	"context"

	domain "loandesk-backend/internal/domain/loanfile"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return domain.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn           func(ctx context.Context, f *domain.LoanFile) error
	GetByIDFn          func(ctx context.Context, workspaceID, id string) (*domain.LoanFile, error)
	GetByIDForUpdateFn func(ctx context.Context, workspaceID, id string) (*domain.LoanFile, error)
	ListByWorkspaceFn  func(ctx context.Context, workspaceID string, status domain.Status) ([]domain.LoanFile, error)
	ListByClientFn     func(ctx context.Context, workspaceID, clientID string) ([]domain.LoanFile, error)
	CountByLoanTypeFn  func(ctx context.Context, workspaceID, loanTypeID string) (int64, error)
	SaveFn             func(ctx context.Context, f *domain.LoanFile) error
	DeleteByIDsFn      func(ctx context.Context, ids []string) error
}

func (m *Repo) Create(ctx context.Context, f *domain.LoanFile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, workspaceID, id string) (*domain.LoanFile, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, workspaceID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, workspaceID, id string) (*domain.LoanFile, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, workspaceID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByWorkspace(ctx context.Context, workspaceID string, status domain.Status) ([]domain.LoanFile, error) {
	if m.ListByWorkspaceFn != nil {
		return m.ListByWorkspaceFn(ctx, workspaceID, status)
	}
	return nil, nil
}

func (m *Repo) ListByClient(ctx context.Context, workspaceID, clientID string) ([]domain.LoanFile, error) {
	if m.ListByClientFn != nil {
		return m.ListByClientFn(ctx, workspaceID, clientID)
	}
	return nil, nil
}

func (m *Repo) CountByLoanType(ctx context.Context, workspaceID, loanTypeID string) (int64, error) {
	if m.CountByLoanTypeFn != nil {
		return m.CountByLoanTypeFn(ctx, workspaceID, loanTypeID)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, f *domain.LoanFile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}

func (m *Repo) DeleteByIDs(ctx context.Context, ids []string) error {
	if m.DeleteByIDsFn != nil {
		return m.DeleteByIDsFn(ctx, ids)
	}
	return nil
}

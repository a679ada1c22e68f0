package loanfile

import "context"

type Repository interface {
	Create(ctx context.Context, f *LoanFile) error
	GetByID(ctx context.Context, workspaceID, id string) (*LoanFile, error)
	GetByIDForUpdate(ctx context.Context, workspaceID, id string) (*LoanFile, error)
	// ListByWorkspace filters by status when status is non-empty.
	ListByWorkspace(ctx context.Context, workspaceID string, status Status) ([]LoanFile, error)
	ListByClient(ctx context.Context, workspaceID, clientID string) ([]LoanFile, error)
	CountByLoanType(ctx context.Context, workspaceID, loanTypeID string) (int64, error)
	Save(ctx context.Context, f *LoanFile) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

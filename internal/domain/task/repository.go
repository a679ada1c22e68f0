package task

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, ts []Task) error
	GetByID(ctx context.Context, workspaceID, id string) (*Task, error)
	// ListByLoanFile returns tasks ordered by Order ascending.
	ListByLoanFile(ctx context.Context, workspaceID, loanFileID string) ([]Task, error)
	CountByTemplate(ctx context.Context, templateID string) (int64, error)
	Save(ctx context.Context, t *Task) error
	DeleteByLoanFiles(ctx context.Context, loanFileIDs []string) error
	// SyncWorkspaceFromLoanFiles rewrites tasks whose workspace id drifted
	// from their loan file and returns the number of rows touched.
	SyncWorkspaceFromLoanFiles(ctx context.Context) (int64, error)
}

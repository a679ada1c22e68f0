package uow

import (
	"context"

	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/client"
	"loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/domain/loantype"
	"loandesk-backend/internal/domain/message"
	"loandesk-backend/internal/domain/task"
	"loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/internal/domain/workspace"
)

// Repos are bound to the same transaction.
type Repos struct {
	Workspaces workspace.Repository
	Clients    client.Repository
	LoanTypes  loantype.Repository
	Templates  tasktemplate.Repository
	LoanFiles  loanfile.Repository
	Tasks      task.Repository
	Messages   message.Repository
	Audit      audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan file first, then pass it in
	WithinLoanFileTx(ctx context.Context, workspaceID, loanFileID string, fn func(r Repos, f *loanfile.LoanFile) error) error
}

package gormdb

import (
	"context"

	"loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// Repos returns repositories bound to db (a tx or the root handle).
func Repos(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Workspaces: &WorkspaceRepository{db: db},
		Clients:    &ClientRepository{db: db},
		LoanTypes:  &LoanTypeRepository{db: db},
		Templates:  &TaskTemplateRepository{db: db},
		LoanFiles:  &LoanFileRepository{db: db},
		Tasks:      &TaskRepository{db: db},
		Messages:   &MessageRepository{db: db},
		Audit:      &AuditRepository{db: db},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repos(tx))
	})
}

func (u *GormUoW) WithinLoanFileTx(ctx context.Context, workspaceID, loanFileID string, fn func(r uow.Repos, f *loanfile.LoanFile) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := Repos(tx)
		// lock the loan file row up-front to prevent racing transitions
		f, err := r.LoanFiles.GetByIDForUpdate(ctx, workspaceID, loanFileID)
		if err != nil {
			return err
		}
		return fn(r, f)
	})
}

package gormdb

import (
	"context"

	lfDomain "loandesk-backend/internal/domain/loanfile"

	"gorm.io/gorm"
)

type LoanFileRepository struct{ db *gorm.DB }

func NewLoanFileRepository(db *gorm.DB) *LoanFileRepository { return &LoanFileRepository{db: db} }

func (r *LoanFileRepository) Create(ctx context.Context, f *lfDomain.LoanFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *LoanFileRepository) GetByID(ctx context.Context, workspaceID, id string) (*lfDomain.LoanFile, error) {
	var out lfDomain.LoanFile
	err := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).First(&out).Error
	if err != nil {
		return nil, notFound(err, lfDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanFileRepository) GetByIDForUpdate(ctx context.Context, workspaceID, id string) (*lfDomain.LoanFile, error) {
	var out lfDomain.LoanFile
	err := r.db.WithContext(ctx).Clauses(forUpdate).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, lfDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanFileRepository) ListByWorkspace(ctx context.Context, workspaceID string, status lfDomain.Status) ([]lfDomain.LoanFile, error) {
	q := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []lfDomain.LoanFile
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *LoanFileRepository) ListByClient(ctx context.Context, workspaceID, clientID string) ([]lfDomain.LoanFile, error) {
	var out []lfDomain.LoanFile
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND client_id = ?", workspaceID, clientID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *LoanFileRepository) CountByLoanType(ctx context.Context, workspaceID, loanTypeID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&lfDomain.LoanFile{}).
		Where("workspace_id = ? AND loan_type_id = ?", workspaceID, loanTypeID).
		Count(&n).Error
	return n, err
}

func (r *LoanFileRepository) Save(ctx context.Context, f *lfDomain.LoanFile) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *LoanFileRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&lfDomain.LoanFile{}).Error
}

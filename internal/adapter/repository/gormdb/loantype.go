package gormdb

import (
	"context"

	ltDomain "loandesk-backend/internal/domain/loantype"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository { return &LoanTypeRepository{db: db} }

func (r *LoanTypeRepository) Create(ctx context.Context, l *ltDomain.LoanType) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanTypeRepository) GetByID(ctx context.Context, workspaceID, id string) (*ltDomain.LoanType, error) {
	var out ltDomain.LoanType
	err := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).First(&out).Error
	if err != nil {
		return nil, notFound(err, ltDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanTypeRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]ltDomain.LoanType, error) {
	var out []ltDomain.LoanType
	err := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *LoanTypeRepository) Save(ctx context.Context, l *ltDomain.LoanType) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanTypeRepository) Delete(ctx context.Context, workspaceID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&ltDomain.LoanType{})
		if err := affected(res, ltDomain.ErrNotFound); err != nil {
			return err
		}
		return tx.Where("loan_type_id = ?", id).Delete(&ltDomain.TemplateLink{}).Error
	})
}

// AttachTemplate is idempotent.
func (r *LoanTypeRepository) AttachTemplate(ctx context.Context, loanTypeID, templateID string) error {
	link := &ltDomain.TemplateLink{LoanTypeID: loanTypeID, TaskTemplateID: templateID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error
}

func (r *LoanTypeRepository) DetachTemplate(ctx context.Context, loanTypeID, templateID string) error {
	res := r.db.WithContext(ctx).
		Where("loan_type_id = ? AND task_template_id = ?", loanTypeID, templateID).
		Delete(&ltDomain.TemplateLink{})
	return affected(res, ltDomain.ErrLinkNotFound)
}

func (r *LoanTypeRepository) ListTemplateIDs(ctx context.Context, loanTypeID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&ltDomain.TemplateLink{}).
		Where("loan_type_id = ?", loanTypeID).
		Order("created_at ASC, task_template_id ASC").
		Pluck("task_template_id", &ids).Error
	return ids, err
}

func (r *LoanTypeRepository) DeleteLinksByTemplate(ctx context.Context, templateID string) error {
	return r.db.WithContext(ctx).Where("task_template_id = ?", templateID).Delete(&ltDomain.TemplateLink{}).Error
}

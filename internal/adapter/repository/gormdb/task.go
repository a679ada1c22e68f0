package gormdb

import (
	"context"

	lfDomain "loandesk-backend/internal/domain/loanfile"
	taskDomain "loandesk-backend/internal/domain/task"

	"gorm.io/gorm"
)

type TaskRepository struct{ db *gorm.DB }

func NewTaskRepository(db *gorm.DB) *TaskRepository { return &TaskRepository{db: db} }

func (r *TaskRepository) CreateBatch(ctx context.Context, ts []taskDomain.Task) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(ts, 100).Error
}

func (r *TaskRepository) GetByID(ctx context.Context, workspaceID, id string) (*taskDomain.Task, error) {
	var out taskDomain.Task
	err := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).First(&out).Error
	if err != nil {
		return nil, notFound(err, taskDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *TaskRepository) ListByLoanFile(ctx context.Context, workspaceID, loanFileID string) ([]taskDomain.Task, error) {
	var out []taskDomain.Task
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND loan_file_id = ?", workspaceID, loanFileID).
		Order("sort_order ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *TaskRepository) CountByTemplate(ctx context.Context, templateID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&taskDomain.Task{}).Where("template_id = ?", templateID).Count(&n).Error
	return n, err
}

func (r *TaskRepository) Save(ctx context.Context, t *taskDomain.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TaskRepository) DeleteByLoanFiles(ctx context.Context, loanFileIDs []string) error {
	if len(loanFileIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("loan_file_id IN ?", loanFileIDs).Delete(&taskDomain.Task{}).Error
}

func (r *TaskRepository) SyncWorkspaceFromLoanFiles(ctx context.Context) (int64, error) {
	owner := r.db.Model(&lfDomain.LoanFile{}).
		Select("loan_files.workspace_id").
		Where("loan_files.id = tasks.loan_file_id")
	drifted := r.db.Model(&lfDomain.LoanFile{}).
		Select("1").
		Where("loan_files.id = tasks.loan_file_id AND loan_files.workspace_id <> tasks.workspace_id")

	res := r.db.WithContext(ctx).Model(&taskDomain.Task{}).
		Where("(tasks.workspace_id = '' OR EXISTS (?))", drifted).
		Where("EXISTS (?)", r.db.Model(&lfDomain.LoanFile{}).Select("1").Where("loan_files.id = tasks.loan_file_id")).
		UpdateColumn("workspace_id", owner)
	return res.RowsAffected, res.Error
}

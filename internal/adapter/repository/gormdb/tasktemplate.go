package gormdb

import (
	"context"
	"time"

	ttDomain "loandesk-backend/internal/domain/tasktemplate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskTemplateRepository struct{ db *gorm.DB }

func NewTaskTemplateRepository(db *gorm.DB) *TaskTemplateRepository {
	return &TaskTemplateRepository{db: db}
}

func (r *TaskTemplateRepository) Create(ctx context.Context, t *ttDomain.TaskTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskTemplateRepository) CreateBatch(ctx context.Context, ts []ttDomain.TaskTemplate) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(ts, 100).Error
}

func (r *TaskTemplateRepository) GetByID(ctx context.Context, workspaceID, id string) (*ttDomain.TaskTemplate, error) {
	var out ttDomain.TaskTemplate
	err := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).First(&out).Error
	if err != nil {
		return nil, notFound(err, ttDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *TaskTemplateRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]ttDomain.TaskTemplate, error) {
	var out []ttDomain.TaskTemplate
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("sort_order ASC, created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *TaskTemplateRepository) Save(ctx context.Context, t *ttDomain.TaskTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TaskTemplateRepository) Delete(ctx context.Context, workspaceID, id string) error {
	res := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&ttDomain.TaskTemplate{})
	return affected(res, ttDomain.ErrNotFound)
}

func (r *TaskTemplateRepository) GetSeedMarker(ctx context.Context, workspaceID string) (*ttDomain.SeedMarker, error) {
	var out ttDomain.SeedMarker
	err := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).First(&out).Error
	if err != nil {
		return nil, notFound(err, ttDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *TaskTemplateRepository) CreateSeedMarker(ctx context.Context, workspaceID string, at time.Time) error {
	m := &ttDomain.SeedMarker{WorkspaceID: workspaceID, SeedCount: 1, SeededAt: at}
	return duplicate(r.db.WithContext(ctx).Create(m).Error, ttDomain.ErrAlreadySeeded)
}

func (r *TaskTemplateRepository) BumpSeedMarker(ctx context.Context, workspaceID string, at time.Time) error {
	m := &ttDomain.SeedMarker{WorkspaceID: workspaceID, SeedCount: 1, SeededAt: at}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "workspace_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"seed_count": gorm.Expr("seed_count + 1"),
			"seeded_at":  at,
		}),
	}).Create(m).Error
}

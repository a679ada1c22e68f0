package gormdb

import (
	"context"

	auditDomain "loandesk-backend/internal/domain/audit"
	ttDomain "loandesk-backend/internal/domain/tasktemplate"
	wsDomain "loandesk-backend/internal/domain/workspace"

	"gorm.io/gorm"
)

type WorkspaceRepository struct{ db *gorm.DB }

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository { return &WorkspaceRepository{db: db} }

func (r *WorkspaceRepository) Create(ctx context.Context, w *wsDomain.Workspace) error {
	return duplicate(r.db.WithContext(ctx).Create(w).Error, wsDomain.ErrSlugTaken)
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id string) (*wsDomain.Workspace, error) {
	var out wsDomain.Workspace
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, wsDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *WorkspaceRepository) GetByIDForUpdate(ctx context.Context, id string) (*wsDomain.Workspace, error) {
	var out wsDomain.Workspace
	if err := r.db.WithContext(ctx).Clauses(forUpdate).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, wsDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *WorkspaceRepository) GetBySlug(ctx context.Context, slug string) (*wsDomain.Workspace, error) {
	var out wsDomain.Workspace
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&out).Error; err != nil {
		return nil, notFound(err, wsDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *WorkspaceRepository) List(ctx context.Context) ([]wsDomain.Workspace, error) {
	var out []wsDomain.Workspace
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *WorkspaceRepository) Save(ctx context.Context, w *wsDomain.Workspace) error {
	return duplicate(r.db.WithContext(ctx).Save(w).Error, wsDomain.ErrSlugTaken)
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&wsDomain.Member{}, &ttDomain.SeedMarker{}, &auditDomain.Entry{}} {
			if err := tx.Where("workspace_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return affected(tx.Where("id = ?", id).Delete(&wsDomain.Workspace{}), wsDomain.ErrNotFound)
	})
}

func (r *WorkspaceRepository) AddMember(ctx context.Context, m *wsDomain.Member) error {
	return duplicate(r.db.WithContext(ctx).Create(m).Error, wsDomain.ErrAlreadyMember)
}

func (r *WorkspaceRepository) GetMember(ctx context.Context, workspaceID, userID string) (*wsDomain.Member, error) {
	var out wsDomain.Member
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, wsDomain.ErrMemberNotFound)
	}
	return &out, nil
}

func (r *WorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]wsDomain.Member, error) {
	var out []wsDomain.Member
	err := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *WorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Delete(&wsDomain.Member{})
	return affected(res, wsDomain.ErrMemberNotFound)
}

package gormdb

import (
	"context"

	clientDomain "loandesk-backend/internal/domain/client"

	"gorm.io/gorm"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.Client) error {
	return duplicate(r.db.WithContext(ctx).Create(c).Error, clientDomain.ErrEmailTaken)
}

func (r *ClientRepository) GetByID(ctx context.Context, workspaceID, id string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	err := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).First(&out).Error
	if err != nil {
		return nil, notFound(err, clientDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ClientRepository) GetByEmail(ctx context.Context, workspaceID, email string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	err := r.db.WithContext(ctx).Where("workspace_id = ? AND email = ?", workspaceID, email).First(&out).Error
	if err != nil {
		return nil, notFound(err, clientDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ClientRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]clientDomain.Client, error) {
	var out []clientDomain.Client
	err := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *ClientRepository) Save(ctx context.Context, c *clientDomain.Client) error {
	return duplicate(r.db.WithContext(ctx).Save(c).Error, clientDomain.ErrEmailTaken)
}

func (r *ClientRepository) Delete(ctx context.Context, workspaceID, id string) error {
	res := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&clientDomain.Client{})
	return affected(res, clientDomain.ErrNotFound)
}

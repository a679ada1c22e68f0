package gormdb

import (
	"context"
	"time"

	auditDomain "loandesk-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListByWorkspace(ctx context.Context, workspaceID string, before time.Time, limit int) ([]auditDomain.Entry, error) {
	q := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if !before.IsZero() {
		q = q.Where("created_at < ?", before)
	}
	var out []auditDomain.Entry
	err := q.Order("created_at DESC, id DESC").Limit(pageSize(limit)).Find(&out).Error
	return out, err
}

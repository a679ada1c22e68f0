package gormdb

import (
	"context"
	"time"

	msgDomain "loandesk-backend/internal/domain/message"

	"gorm.io/gorm"
)

type MessageRepository struct{ db *gorm.DB }

func NewMessageRepository(db *gorm.DB) *MessageRepository { return &MessageRepository{db: db} }

func (r *MessageRepository) Create(ctx context.Context, m *msgDomain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageRepository) GetByID(ctx context.Context, workspaceID, id string) (*msgDomain.Message, error) {
	var out msgDomain.Message
	err := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).First(&out).Error
	if err != nil {
		return nil, notFound(err, msgDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *MessageRepository) ListByLoanFile(ctx context.Context, workspaceID, loanFileID string, before time.Time, limit int) ([]msgDomain.Message, error) {
	q := r.db.WithContext(ctx).Where("workspace_id = ? AND loan_file_id = ?", workspaceID, loanFileID)
	if !before.IsZero() {
		q = q.Where("created_at < ?", before)
	}
	var out []msgDomain.Message
	err := q.Order("created_at DESC, id DESC").Limit(pageSize(limit)).Find(&out).Error
	return out, err
}

func (r *MessageRepository) Delete(ctx context.Context, workspaceID, id string) error {
	res := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&msgDomain.Message{})
	return affected(res, msgDomain.ErrNotFound)
}

func (r *MessageRepository) DeleteByLoanFiles(ctx context.Context, loanFileIDs []string) error {
	if len(loanFileIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("loan_file_id IN ?", loanFileIDs).Delete(&msgDomain.Message{}).Error
}

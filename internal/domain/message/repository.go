package message

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	GetByID(ctx context.Context, workspaceID, id string) (*Message, error)
	// ListByLoanFile returns up to limit messages created strictly before
	// `before` (zero means now), newest first.
	ListByLoanFile(ctx context.Context, workspaceID, loanFileID string, before time.Time, limit int) ([]Message, error)
	Delete(ctx context.Context, workspaceID, id string) error
	DeleteByLoanFiles(ctx context.Context, loanFileIDs []string) error
}

package audit

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	// ListByWorkspace pages newest first; before is exclusive, zero means now.
	ListByWorkspace(ctx context.Context, workspaceID string, before time.Time, limit int) ([]Entry, error)
}

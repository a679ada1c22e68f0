package tasktemplate

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t *TaskTemplate) error
	CreateBatch(ctx context.Context, ts []TaskTemplate) error
	GetByID(ctx context.Context, workspaceID, id string) (*TaskTemplate, error)
	// ListByWorkspace returns templates ordered by Order ascending.
	ListByWorkspace(ctx context.Context, workspaceID string) ([]TaskTemplate, error)
	Save(ctx context.Context, t *TaskTemplate) error
	Delete(ctx context.Context, workspaceID, id string) error

	GetSeedMarker(ctx context.Context, workspaceID string) (*SeedMarker, error)
	// CreateSeedMarker inserts the marker; ErrAlreadySeeded when one exists.
	CreateSeedMarker(ctx context.Context, workspaceID string, at time.Time) error
	// BumpSeedMarker inserts the marker or increments its counter.
	BumpSeedMarker(ctx context.Context, workspaceID string, at time.Time) error
}

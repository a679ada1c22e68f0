package workspace

import "context"

type Repository interface {
	Create(ctx context.Context, w *Workspace) error
	GetByID(ctx context.Context, id string) (*Workspace, error)
	// GetByIDForUpdate locks the workspace row until the surrounding tx ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Workspace, error)
	GetBySlug(ctx context.Context, slug string) (*Workspace, error)
	List(ctx context.Context) ([]Workspace, error)
	Save(ctx context.Context, w *Workspace) error
	// Delete drops the workspace with its members, seed marker and audit trail.
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, m *Member) error
	GetMember(ctx context.Context, workspaceID, userID string) (*Member, error)
	ListMembers(ctx context.Context, workspaceID string) ([]Member, error)
	RemoveMember(ctx context.Context, workspaceID, userID string) error
}

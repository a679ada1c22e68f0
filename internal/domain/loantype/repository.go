package loantype

import "context"

type Repository interface {
	Create(ctx context.Context, l *LoanType) error
	GetByID(ctx context.Context, workspaceID, id string) (*LoanType, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]LoanType, error)
	Save(ctx context.Context, l *LoanType) error
	Delete(ctx context.Context, workspaceID, id string) error

	AttachTemplate(ctx context.Context, loanTypeID, templateID string) error
	DetachTemplate(ctx context.Context, loanTypeID, templateID string) error
	ListTemplateIDs(ctx context.Context, loanTypeID string) ([]string, error)
	// DeleteLinksByTemplate drops every association of a template.
	DeleteLinksByTemplate(ctx context.Context, templateID string) error
}

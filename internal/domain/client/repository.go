package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, workspaceID, id string) (*Client, error)
	GetByEmail(ctx context.Context, workspaceID, email string) (*Client, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]Client, error)
	Save(ctx context.Context, c *Client) error
	Delete(ctx context.Context, workspaceID, id string) error
}

package client

import (
	"time"

	"loandesk-backend/internal/domain/errs"
)

var (
	ErrNotFound   = errs.NotFound("client")
	ErrEmailTaken = errs.Conflict("client email already used in workspace")
)

// Table: clients. Email is unique inside a workspace.
type Client struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	WorkspaceID string    `gorm:"size:32;not null;index;uniqueIndex:ux_clients_workspace_email" json:"workspace_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null;uniqueIndex:ux_clients_workspace_email" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

package workspace

import (
	"time"

	"loandesk-backend/internal/domain/errs"
)

var (
	ErrNotFound       = errs.NotFound("workspace")
	ErrMemberNotFound = errs.NotFound("workspace member")
	ErrSlugTaken      = errs.Conflict("workspace slug already used")
	ErrAlreadyMember  = errs.Conflict("user is already a workspace member")
	ErrNotEmpty       = errs.Conflict("workspace still holds clients, loan types or task templates")
)

type Role string

const (
	RoleAdvisor Role = "ADVISOR"
	RoleStaff   Role = "STAFF"
)

func (r Role) Valid() bool { return r == RoleAdvisor || r == RoleStaff }

// Table: workspaces. Top-level tenant; every other row carries its id.
type Workspace struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:100;not null;uniqueIndex:ux_workspaces_slug" json:"slug"`
	OwnerID   string    `gorm:"size:32;not null;index" json:"owner_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Workspace) TableName() string { return "workspaces" }

// Table: workspace_members. Advisors must be members to own loan files.
type Member struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	WorkspaceID string    `gorm:"size:32;not null;uniqueIndex:ux_members_workspace_user" json:"workspace_id"`
	UserID      string    `gorm:"size:32;not null;uniqueIndex:ux_members_workspace_user" json:"user_id"`
	Role        Role      `gorm:"size:16;not null" json:"role"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Member) TableName() string { return "workspace_members" }

package tasktemplate

import (
	"time"

	"loandesk-backend/internal/domain/errs"
)

var (
	ErrNotFound      = errs.NotFound("task template")
	ErrAlreadySeeded = errs.Conflict("workspace already received the default task templates")
)

// Role is the kind of participant a task is meant for.
type Role string

const (
	RoleAdvisor Role = "ADVISOR"
	RoleStaff   Role = "STAFF"
	RoleClient  Role = "CLIENT"
)

func (r Role) Valid() bool { return r == RoleAdvisor || r == RoleStaff || r == RoleClient }

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Table: task_templates
type TaskTemplate struct {
	ID               string    `gorm:"primaryKey;size:32" json:"id"`
	WorkspaceID      string    `gorm:"size:32;not null;index:idx_task_templates_workspace_order" json:"workspace_id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Role             Role      `gorm:"size:16;not null" json:"role"`
	Instructions     string    `gorm:"type:text" json:"instructions"`
	Required         bool      `gorm:"not null;default:false" json:"required"`
	DueInDays        int       `gorm:"not null;default:0" json:"due_in_days"`
	AllowAttachments bool      `gorm:"not null;default:false" json:"allow_attachments"`
	Priority         Priority  `gorm:"size:16;not null;default:normal" json:"priority"`
	Order            int       `gorm:"column:sort_order;not null;default:0;index:idx_task_templates_workspace_order" json:"order"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TaskTemplate) TableName() string { return "task_templates" }

// SeedPolicy decides when a workspace without templates gets the default catalog.
type SeedPolicy string

const (
	// SeedOnce never re-seeds a workspace that already received the catalog.
	SeedOnce SeedPolicy = "once"
	// SeedWhenEmpty re-seeds whenever the workspace has no live templates.
	SeedWhenEmpty SeedPolicy = "when_empty"
)

func (p SeedPolicy) Valid() bool { return p == SeedOnce || p == SeedWhenEmpty }

// Table: task_template_seeds. One row per workspace that received the
// default catalog; the unique key keeps concurrent seeders from both winning.
type SeedMarker struct {
	WorkspaceID string    `gorm:"primaryKey;size:32" json:"workspace_id"`
	SeedCount   int       `gorm:"not null;default:1" json:"seed_count"`
	SeededAt    time.Time `json:"seeded_at"`
}

func (SeedMarker) TableName() string { return "task_template_seeds" }

package task

import (
	"time"

	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/tasktemplate"
)

var ErrNotFound = errs.NotFound("task")

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// Table: tasks. WorkspaceID mirrors the owning loan file's workspace.
type Task struct {
	ID             string                `gorm:"primaryKey;size:32" json:"id"`
	WorkspaceID    string                `gorm:"size:32;not null;index" json:"workspace_id"`
	LoanFileID     string                `gorm:"size:32;not null;index:idx_tasks_loan_file_order" json:"loan_file_id"`
	TemplateID     string                `gorm:"size:32;not null;index" json:"template_id"`
	Title          string                `gorm:"size:255;not null" json:"title"`
	AssigneeUserID *string               `gorm:"size:32" json:"assignee_user_id,omitempty"`
	AssigneeRole   tasktemplate.Role     `gorm:"size:16;not null" json:"assignee_role"`
	Instructions   string                `gorm:"type:text" json:"instructions"`
	Status         Status                `gorm:"size:16;not null;default:pending" json:"status"`
	Priority       tasktemplate.Priority `gorm:"size:16;not null" json:"priority"`
	DueDate        time.Time             `gorm:"not null" json:"due_date"`
	Order          int                   `gorm:"column:sort_order;not null;index:idx_tasks_loan_file_order" json:"order"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
	CreatedAt      time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }

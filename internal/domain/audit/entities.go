package audit

import "time"

const (
	ActionLoanFileProvisioned = "loan_file.provisioned"
	ActionLoanFileStatus      = "loan_file.status_changed"
	ActionLoanFileStage       = "loan_file.stage_changed"
	ActionClientDeleted       = "client.deleted"
	ActionTemplatesSeeded     = "task_templates.seeded"
)

// Table: audit_logs
type Entry struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID string    `gorm:"size:32;not null;index:idx_audit_workspace_created" json:"workspace_id"`
	ActorID     string    `gorm:"size:32" json:"actor_id,omitempty"`
	EntityType  string    `gorm:"size:50;not null" json:"entity_type"`
	EntityID    string    `gorm:"size:32;not null" json:"entity_id"`
	Action      string    `gorm:"size:50;not null" json:"action"`
	Detail      string    `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_audit_workspace_created" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }

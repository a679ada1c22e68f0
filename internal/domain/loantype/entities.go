package loantype

import (
	"time"

	"gorm.io/datatypes"

	"loandesk-backend/internal/domain/errs"
)

var (
	ErrNotFound     = errs.NotFound("loan type")
	ErrLinkNotFound = errs.NotFound("loan type template link")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// DefaultStage is used for loan files whose loan type declares no stages.
const DefaultStage = "Application"

// Table: loan_types
type LoanType struct {
	ID          string                     `gorm:"primaryKey;size:32" json:"id"`
	WorkspaceID string                     `gorm:"size:32;not null;index" json:"workspace_id"`
	Name        string                     `gorm:"size:255;not null" json:"name"`
	Description string                     `gorm:"type:text" json:"description"`
	Category    string                     `gorm:"size:100" json:"category"`
	Stages      datatypes.JSONSlice[string] `json:"stages"`
	MinAmount   float64                    `gorm:"type:decimal(18,2)" json:"min_amount"`
	MaxAmount   float64                    `gorm:"type:decimal(18,2)" json:"max_amount"`
	MinRate     float64                    `gorm:"type:decimal(6,4)" json:"min_rate"`
	MaxRate     float64                    `gorm:"type:decimal(6,4)" json:"max_rate"`
	Status      Status                     `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt   time.Time                  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanType) TableName() string { return "loan_types" }

// InitialStage is the first declared stage, or DefaultStage when there is none.
func (l *LoanType) InitialStage() string {
	if len(l.Stages) == 0 || l.Stages[0] == "" {
		return DefaultStage
	}
	return l.Stages[0]
}

// HasStage reports whether s is one of the declared stages (or the fallback
// stage of a loan type without stages).
func (l *LoanType) HasStage(s string) bool {
	if len(l.Stages) == 0 {
		return s == DefaultStage
	}
	for _, st := range l.Stages {
		if st == s {
			return true
		}
	}
	return false
}

// Table: loan_type_task_templates. Join between a loan type and the
// templates it is associated with.
type TemplateLink struct {
	LoanTypeID     string    `gorm:"primaryKey;size:32" json:"loan_type_id"`
	TaskTemplateID string    `gorm:"primaryKey;size:32;index" json:"task_template_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TemplateLink) TableName() string { return "loan_type_task_templates" }

package loanfile

import (
	"time"

	"loandesk-backend/internal/domain/errs"
)

var (
	ErrNotFound          = errs.NotFound("loan file")
	ErrInvalidTransition = errs.Conflict("invalid loan file status transition")
)

type Status string

const (
	StatusDraft       Status = "draft"
	StatusInProgress  Status = "in_progress"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusClosed      Status = "closed"
)

var next = map[Status]Status{
	StatusDraft:       StatusInProgress,
	StatusInProgress:  StatusUnderReview,
	StatusUnderReview: StatusApproved,
	StatusApproved:    StatusClosed,
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusUnderReview, StatusApproved, StatusClosed:
		return true
	}
	return false
}

// CanTransition allows one step forward, or closing from any open state.
func (s Status) CanTransition(to Status) bool {
	if s == StatusClosed {
		return false
	}
	if to == StatusClosed {
		return true
	}
	return next[s] == to
}

// Table: loan_files
type LoanFile struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	WorkspaceID  string    `gorm:"size:32;not null;index:idx_loan_files_workspace_status" json:"workspace_id"`
	LoanTypeID   string    `gorm:"size:32;not null;index" json:"loan_type_id"`
	ClientID     string    `gorm:"size:32;not null;index" json:"client_id"`
	AdvisorID    string    `gorm:"size:32;not null" json:"advisor_id"`
	Status       Status    `gorm:"size:16;not null;default:draft;index:idx_loan_files_workspace_status" json:"status"`
	CurrentStage string    `gorm:"size:100;not null" json:"current_stage"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanFile) TableName() string { return "loan_files" }

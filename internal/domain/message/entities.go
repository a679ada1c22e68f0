package message

import (
	"time"

	"loandesk-backend/internal/domain/errs"
)

var ErrNotFound = errs.NotFound("message")

// Table: messages
type Message struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	WorkspaceID string    `gorm:"size:32;not null;index" json:"workspace_id"`
	LoanFileID  string    `gorm:"size:32;not null;index:idx_messages_loan_file_created" json:"loan_file_id"`
	SenderID    string    `gorm:"size:32;not null" json:"sender_id"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_messages_loan_file_created" json:"created_at"`
}

func (Message) TableName() string { return "messages" }

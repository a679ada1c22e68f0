package db

import (
	"fmt"

	"gorm.io/gorm"

	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/client"
	"loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/domain/loantype"
	"loandesk-backend/internal/domain/message"
	"loandesk-backend/internal/domain/task"
	"loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/internal/domain/workspace"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&workspace.Workspace{},
		&workspace.Member{},
		&client.Client{},
		&loantype.LoanType{},
		&tasktemplate.TaskTemplate{},
		&tasktemplate.SeedMarker{},
		&loantype.TemplateLink{},
		&loanfile.LoanFile{},
		&task.Task{},
		&message.Message{},
		&audit.Entry{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

package provisioning

import (
	"strings"

	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/tasktemplate"
)

type SeedPolicy = tasktemplate.SeedPolicy

const (
	SeedOnce      = tasktemplate.SeedOnce
	SeedWhenEmpty = tasktemplate.SeedWhenEmpty
)

type CreateInput struct {
	WorkspaceID string `json:"workspace_id"`
	LoanTypeID  string `json:"loan_type_id"`
	ClientID    string `json:"client_id"`
	AdvisorID   string `json:"advisor_id"`
	// ActorID is recorded in the audit log only.
	ActorID string `json:"-"`
}

func (in CreateInput) validate() error {
	for _, f := range []struct{ name, v string }{
		{"workspace_id", in.WorkspaceID},
		{"loan_type_id", in.LoanTypeID},
		{"client_id", in.ClientID},
		{"advisor_id", in.AdvisorID},
	} {
		if strings.TrimSpace(f.v) == "" {
			return errs.Invalid(f.name, "is required")
		}
	}
	return nil
}

type Result struct {
	LoanFileID   string `json:"loan_file_id"`
	TasksCreated int    `json:"tasks_created"`
	Message      string `json:"message"`
}

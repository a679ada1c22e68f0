// Package maintenance holds one-off data repair jobs run from the CLI.
package maintenance

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"loandesk-backend/internal/domain/task"
)

type Usecase struct {
	tasks task.Repository
	log   logrus.FieldLogger
}

func NewUsecase(tasks task.Repository, log logrus.FieldLogger) *Usecase {
	return &Usecase{tasks: tasks, log: log}
}

// BackfillTaskWorkspace copies each loan file's workspace id onto its tasks
// where the task's copy is empty or stale. Safe to run repeatedly.
func (u *Usecase) BackfillTaskWorkspace(ctx context.Context) (int64, error) {
	n, err := u.tasks.SyncWorkspaceFromLoanFiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("backfill task workspace: %w", err)
	}
	u.log.WithField("rows", n).Info("task workspace backfill finished")
	return n, nil
}

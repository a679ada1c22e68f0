package loanfile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/errs"
	domain "loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/domain/uow"
	auditlog "loandesk-backend/internal/usecase/audit"
)

type Usecase struct {
	uow uow.UnitOfWork
	log logrus.FieldLogger
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, log logrus.FieldLogger) *Usecase {
	return &Usecase{uow: tx, log: log, now: time.Now}
}

func (u *Usecase) Get(ctx context.Context, workspaceID, loanFileID string) (*domain.LoanFile, error) {
	var f *domain.LoanFile
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		f, err = r.LoanFiles.GetByID(ctx, workspaceID, loanFileID)
		return err
	})
	return f, err
}

// List filters by status when status is non-empty.
func (u *Usecase) List(ctx context.Context, workspaceID string, status domain.Status) ([]domain.LoanFile, error) {
	if status != "" && !status.Valid() {
		return nil, errs.Invalid("status", "is not a loan file status")
	}
	var out []domain.LoanFile
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		out, err = r.LoanFiles.ListByWorkspace(ctx, workspaceID, status)
		return err
	})
	return out, err
}

func (u *Usecase) ListByClient(ctx context.Context, workspaceID, clientID string) ([]domain.LoanFile, error) {
	var out []domain.LoanFile
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Clients.GetByID(ctx, workspaceID, clientID); err != nil {
			return err
		}
		var err error
		out, err = r.LoanFiles.ListByClient(ctx, workspaceID, clientID)
		return err
	})
	return out, err
}

func (u *Usecase) UpdateStatus(ctx context.Context, workspaceID, loanFileID string, to domain.Status, actorID string) (*domain.LoanFile, error) {
	if !to.Valid() {
		return nil, errs.Invalid("status", "is not a loan file status")
	}
	var out *domain.LoanFile
	var from domain.Status
	err := u.uow.WithinLoanFileTx(ctx, workspaceID, loanFileID, func(r uow.Repos, f *domain.LoanFile) error {
		from = f.Status
		if !from.CanTransition(to) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
		}
		f.Status = to
		f.UpdatedAt = u.now().UTC()
		if err := r.LoanFiles.Save(ctx, f); err != nil {
			return err
		}
		out = f
		return auditlog.Record(ctx, r.Audit, &audit.Entry{
			WorkspaceID: workspaceID,
			ActorID:     actorID,
			EntityType:  "loan_file",
			EntityID:    f.ID,
			Action:      audit.ActionLoanFileStatus,
			Detail:      fmt.Sprintf("%s -> %s", from, to),
			CreatedAt:   f.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"loan_file_id": loanFileID, "from": from, "to": to}).Info("loan file status changed")
	return out, nil
}

// UpdateStage moves an open loan file to another stage of its loan type.
func (u *Usecase) UpdateStage(ctx context.Context, workspaceID, loanFileID, stage, actorID string) (*domain.LoanFile, error) {
	stage = strings.TrimSpace(stage)
	if stage == "" {
		return nil, errs.Invalid("stage", "is required")
	}
	var out *domain.LoanFile
	err := u.uow.WithinLoanFileTx(ctx, workspaceID, loanFileID, func(r uow.Repos, f *domain.LoanFile) error {
		if f.Status == domain.StatusClosed {
			return fmt.Errorf("%w: loan file is closed", domain.ErrInvalidTransition)
		}
		lt, err := r.LoanTypes.GetByID(ctx, workspaceID, f.LoanTypeID)
		if err != nil {
			return err
		}
		if !lt.HasStage(stage) {
			return errs.Invalid("stage", "is not a stage of the loan type")
		}
		from := f.CurrentStage
		f.CurrentStage = stage
		f.UpdatedAt = u.now().UTC()
		if err := r.LoanFiles.Save(ctx, f); err != nil {
			return err
		}
		out = f
		return auditlog.Record(ctx, r.Audit, &audit.Entry{
			WorkspaceID: workspaceID,
			ActorID:     actorID,
			EntityType:  "loan_file",
			EntityID:    f.ID,
			Action:      audit.ActionLoanFileStage,
			Detail:      fmt.Sprintf("%s -> %s", from, stage),
			CreatedAt:   f.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

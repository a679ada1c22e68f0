package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"loandesk-backend/internal/domain/audit"
	domain "loandesk-backend/internal/domain/client"
	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/uow"
	auditlog "loandesk-backend/internal/usecase/audit"
	"loandesk-backend/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
	log logrus.FieldLogger
}

func NewUsecase(tx uow.UnitOfWork, log logrus.FieldLogger) *Usecase {
	return &Usecase{uow: tx, log: log}
}

func (u *Usecase) Create(ctx context.Context, workspaceID string, in CreateInput) (*domain.Client, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	c := &domain.Client{
		ID:          id.NewID32(),
		WorkspaceID: workspaceID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Notes:       in.Notes,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Workspaces.GetByID(ctx, workspaceID); err != nil {
			return err
		}
		if err := emailFree(ctx, r, workspaceID, c.Email, ""); err != nil {
			return err
		}
		return r.Clients.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) Get(ctx context.Context, workspaceID, clientID string) (*domain.Client, error) {
	var c *domain.Client
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		c, err = r.Clients.GetByID(ctx, workspaceID, clientID)
		return err
	})
	return c, err
}

func (u *Usecase) List(ctx context.Context, workspaceID string) ([]domain.Client, error) {
	var out []domain.Client
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		out, err = r.Clients.ListByWorkspace(ctx, workspaceID)
		return err
	})
	return out, err
}

func (u *Usecase) Update(ctx context.Context, workspaceID, clientID string, in UpdateInput) (*domain.Client, error) {
	var c *domain.Client
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if c, err = r.Clients.GetByID(ctx, workspaceID, clientID); err != nil {
			return err
		}
		next := CreateInput{Name: c.Name, Email: c.Email, Phone: c.Phone, Notes: c.Notes}
		if in.Name != nil {
			next.Name = *in.Name
		}
		if in.Email != nil {
			next.Email = *in.Email
		}
		if in.Phone != nil {
			next.Phone = *in.Phone
		}
		if in.Notes != nil {
			next.Notes = *in.Notes
		}
		if err := next.normalize(); err != nil {
			return err
		}
		if next.Email != c.Email {
			if err := emailFree(ctx, r, workspaceID, next.Email, c.ID); err != nil {
				return err
			}
		}
		c.Name, c.Email, c.Phone, c.Notes = next.Name, next.Email, next.Phone, next.Notes
		return r.Clients.Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the client together with its loan files and everything
// hanging off them.
func (u *Usecase) Delete(ctx context.Context, workspaceID, clientID, actorID string) error {
	var removed int
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Clients.GetByID(ctx, workspaceID, clientID); err != nil {
			return err
		}
		files, err := r.LoanFiles.ListByClient(ctx, workspaceID, clientID)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(files))
		for _, f := range files {
			ids = append(ids, f.ID)
		}
		if err := r.Tasks.DeleteByLoanFiles(ctx, ids); err != nil {
			return fmt.Errorf("delete tasks: %w", err)
		}
		if err := r.Messages.DeleteByLoanFiles(ctx, ids); err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		if err := r.LoanFiles.DeleteByIDs(ctx, ids); err != nil {
			return fmt.Errorf("delete loan files: %w", err)
		}
		if err := r.Clients.Delete(ctx, workspaceID, clientID); err != nil {
			return err
		}
		removed = len(ids)
		return auditlog.Record(ctx, r.Audit, &audit.Entry{
			WorkspaceID: workspaceID,
			ActorID:     actorID,
			EntityType:  "client",
			EntityID:    clientID,
			Action:      audit.ActionClientDeleted,
			Detail:      fmt.Sprintf("loan_files=%d", len(ids)),
		})
	})
	if err != nil {
		return err
	}
	u.log.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"client_id":    clientID,
		"loan_files":   removed,
	}).Info("client deleted")
	return nil
}

func emailFree(ctx context.Context, r uow.Repos, workspaceID, email, selfID string) error {
	other, err := r.Clients.GetByEmail(ctx, workspaceID, email)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != selfID:
		return domain.ErrEmailTaken
	}
	return nil
}

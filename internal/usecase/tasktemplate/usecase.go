package tasktemplate

import (
	"context"

	"loandesk-backend/internal/domain/errs"
	domain "loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/internal/domain/uow"
	"loandesk-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create appends the template after the existing ones when no order is given.
func (u *Usecase) Create(ctx context.Context, workspaceID string, in Input) (*domain.TaskTemplate, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	t := &domain.TaskTemplate{ID: id.NewID32(), WorkspaceID: workspaceID}
	assign(t, in)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Workspaces.GetByID(ctx, workspaceID); err != nil {
			return err
		}
		if t.Order == 0 {
			list, err := r.Templates.ListByWorkspace(ctx, workspaceID)
			if err != nil {
				return err
			}
			if n := len(list); n > 0 {
				t.Order = list[n-1].Order + 1
			} else {
				t.Order = 1
			}
		}
		return r.Templates.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (u *Usecase) Get(ctx context.Context, workspaceID, templateID string) (*domain.TaskTemplate, error) {
	var t *domain.TaskTemplate
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		t, err = r.Templates.GetByID(ctx, workspaceID, templateID)
		return err
	})
	return t, err
}

func (u *Usecase) List(ctx context.Context, workspaceID string) ([]domain.TaskTemplate, error) {
	var out []domain.TaskTemplate
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		out, err = r.Templates.ListByWorkspace(ctx, workspaceID)
		return err
	})
	return out, err
}

func (u *Usecase) Update(ctx context.Context, workspaceID, templateID string, in UpdateInput) (*domain.TaskTemplate, error) {
	var t *domain.TaskTemplate
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if t, err = r.Templates.GetByID(ctx, workspaceID, templateID); err != nil {
			return err
		}
		next := in.apply(fromEntity(t))
		if err := next.normalize(); err != nil {
			return err
		}
		assign(t, next)
		return r.Templates.Save(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Delete refuses while tasks were created from the template and drops its
// loan type links otherwise.
func (u *Usecase) Delete(ctx context.Context, workspaceID, templateID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Templates.GetByID(ctx, workspaceID, templateID); err != nil {
			return err
		}
		n, err := r.Tasks.CountByTemplate(ctx, templateID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.Conflict("task template is used by %d tasks", n)
		}
		if err := r.LoanTypes.DeleteLinksByTemplate(ctx, templateID); err != nil {
			return err
		}
		return r.Templates.Delete(ctx, workspaceID, templateID)
	})
}

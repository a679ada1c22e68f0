package loantype

import (
	"context"

	"loandesk-backend/internal/domain/errs"
	domain "loandesk-backend/internal/domain/loantype"
	"loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/internal/domain/uow"
	"loandesk-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) Create(ctx context.Context, workspaceID string, in Input) (*domain.LoanType, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	l := &domain.LoanType{ID: id.NewID32(), WorkspaceID: workspaceID}
	assign(l, in)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Workspaces.GetByID(ctx, workspaceID); err != nil {
			return err
		}
		return r.LoanTypes.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (u *Usecase) Get(ctx context.Context, workspaceID, loanTypeID string) (*domain.LoanType, error) {
	var l *domain.LoanType
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		l, err = r.LoanTypes.GetByID(ctx, workspaceID, loanTypeID)
		return err
	})
	return l, err
}

func (u *Usecase) List(ctx context.Context, workspaceID string) ([]domain.LoanType, error) {
	var out []domain.LoanType
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		out, err = r.LoanTypes.ListByWorkspace(ctx, workspaceID)
		return err
	})
	return out, err
}

func (u *Usecase) Update(ctx context.Context, workspaceID, loanTypeID string, in UpdateInput) (*domain.LoanType, error) {
	var l *domain.LoanType
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if l, err = r.LoanTypes.GetByID(ctx, workspaceID, loanTypeID); err != nil {
			return err
		}
		next := in.apply(fromEntity(l))
		if err := next.normalize(); err != nil {
			return err
		}
		assign(l, next)
		return r.LoanTypes.Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Delete refuses while any loan file still points at the loan type.
func (u *Usecase) Delete(ctx context.Context, workspaceID, loanTypeID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.LoanTypes.GetByID(ctx, workspaceID, loanTypeID); err != nil {
			return err
		}
		n, err := r.LoanFiles.CountByLoanType(ctx, workspaceID, loanTypeID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.Conflict("loan type is used by %d loan files", n)
		}
		return r.LoanTypes.Delete(ctx, workspaceID, loanTypeID)
	})
}

func (u *Usecase) AttachTemplate(ctx context.Context, workspaceID, loanTypeID, templateID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.LoanTypes.GetByID(ctx, workspaceID, loanTypeID); err != nil {
			return err
		}
		if _, err := r.Templates.GetByID(ctx, workspaceID, templateID); err != nil {
			return err
		}
		return r.LoanTypes.AttachTemplate(ctx, loanTypeID, templateID)
	})
}

func (u *Usecase) DetachTemplate(ctx context.Context, workspaceID, loanTypeID, templateID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.LoanTypes.GetByID(ctx, workspaceID, loanTypeID); err != nil {
			return err
		}
		return r.LoanTypes.DetachTemplate(ctx, loanTypeID, templateID)
	})
}

// ListTemplates returns the attached templates in workspace template order.
func (u *Usecase) ListTemplates(ctx context.Context, workspaceID, loanTypeID string) ([]tasktemplate.TaskTemplate, error) {
	var out []tasktemplate.TaskTemplate
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.LoanTypes.GetByID(ctx, workspaceID, loanTypeID); err != nil {
			return err
		}
		ids, err := r.LoanTypes.ListTemplateIDs(ctx, loanTypeID)
		if err != nil {
			return err
		}
		linked := make(map[string]bool, len(ids))
		for _, tid := range ids {
			linked[tid] = true
		}
		all, err := r.Templates.ListByWorkspace(ctx, workspaceID)
		if err != nil {
			return err
		}
		out = make([]tasktemplate.TaskTemplate, 0, len(ids))
		for _, t := range all {
			if linked[t.ID] {
				out = append(out, t)
			}
		}
		return nil
	})
	return out, err
}

func assign(l *domain.LoanType, in Input) {
	l.Name = in.Name
	l.Description = in.Description
	l.Category = in.Category
	l.Stages = in.Stages
	l.MinAmount, l.MaxAmount = in.MinAmount, in.MaxAmount
	l.MinRate, l.MaxRate = in.MinRate, in.MaxRate
	l.Status = in.Status
}

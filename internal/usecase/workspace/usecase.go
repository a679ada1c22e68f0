package workspace

import (
	"context"
	"errors"
	"strings"

	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/uow"
	domain "loandesk-backend/internal/domain/workspace"
	"loandesk-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create registers the workspace and enrolls the owner as its first advisor.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Workspace, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	w := &domain.Workspace{ID: id.NewID32(), Name: in.Name, Slug: in.Slug, OwnerID: in.OwnerID}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Workspaces.GetBySlug(ctx, in.Slug); err == nil {
			return domain.ErrSlugTaken
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		if err := r.Workspaces.Create(ctx, w); err != nil {
			return err
		}
		return r.Workspaces.AddMember(ctx, &domain.Member{WorkspaceID: w.ID, UserID: in.OwnerID, Role: domain.RoleAdvisor})
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (u *Usecase) Get(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	var w *domain.Workspace
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		w, err = r.Workspaces.GetByID(ctx, workspaceID)
		return err
	})
	return w, err
}

func (u *Usecase) List(ctx context.Context) ([]domain.Workspace, error) {
	var out []domain.Workspace
	err := u.uow.WithinTx(ctx, func(r uow.Repos) (err error) {
		out, err = r.Workspaces.List(ctx)
		return err
	})
	return out, err
}

func (u *Usecase) Update(ctx context.Context, workspaceID string, in UpdateInput) (*domain.Workspace, error) {
	var w *domain.Workspace
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if w, err = r.Workspaces.GetByIDForUpdate(ctx, workspaceID); err != nil {
			return err
		}
		next := CreateInput{Name: w.Name, Slug: w.Slug, OwnerID: w.OwnerID}
		if in.Name != nil {
			next.Name = *in.Name
		}
		if in.Slug != nil {
			next.Slug = *in.Slug
		}
		if err := next.normalize(); err != nil {
			return err
		}
		if next.Slug != w.Slug {
			if other, err := r.Workspaces.GetBySlug(ctx, next.Slug); err == nil && other.ID != w.ID {
				return domain.ErrSlugTaken
			} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
				return err
			}
		}
		w.Name, w.Slug = next.Name, next.Slug
		return r.Workspaces.Save(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Delete removes an empty workspace. Clients, loan types and task templates
// have to go first; loan files, tasks and messages hang off those.
func (u *Usecase) Delete(ctx context.Context, workspaceID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Workspaces.GetByIDForUpdate(ctx, workspaceID); err != nil {
			return err
		}
		clients, err := r.Clients.ListByWorkspace(ctx, workspaceID)
		if err != nil {
			return err
		}
		loanTypes, err := r.LoanTypes.ListByWorkspace(ctx, workspaceID)
		if err != nil {
			return err
		}
		templates, err := r.Templates.ListByWorkspace(ctx, workspaceID)
		if err != nil {
			return err
		}
		if len(clients)+len(loanTypes)+len(templates) > 0 {
			return domain.ErrNotEmpty
		}
		return r.Workspaces.Delete(ctx, workspaceID)
	})
}

func (u *Usecase) AddMember(ctx context.Context, workspaceID string, in MemberInput) (*domain.Member, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return nil, errs.Invalid("user_id", "is required")
	}
	if !in.Role.Valid() {
		return nil, errs.Invalid("role", "must be ADVISOR or STAFF")
	}
	m := &domain.Member{WorkspaceID: workspaceID, UserID: in.UserID, Role: in.Role}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Workspaces.GetByID(ctx, workspaceID); err != nil {
			return err
		}
		if _, err := r.Workspaces.GetMember(ctx, workspaceID, in.UserID); err == nil {
			return domain.ErrAlreadyMember
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		return r.Workspaces.AddMember(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (u *Usecase) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	var out []domain.Member
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Workspaces.GetByID(ctx, workspaceID); err != nil {
			return err
		}
		var err error
		out, err = r.Workspaces.ListMembers(ctx, workspaceID)
		return err
	})
	return out, err
}

// RemoveMember refuses to drop the owner.
func (u *Usecase) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := r.Workspaces.GetByID(ctx, workspaceID)
		if err != nil {
			return err
		}
		if w.OwnerID == userID {
			return errs.Conflict("the workspace owner cannot be removed")
		}
		return r.Workspaces.RemoveMember(ctx, workspaceID, userID)
	})
}

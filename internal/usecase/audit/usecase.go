package audit

import (
	"context"
	"time"

	domain "loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/errs"
)

type Page struct {
	Entries    []domain.Entry `json:"entries"`
	NextBefore *time.Time     `json:"next_before,omitempty"`
}

type Usecase struct {
	repo domain.Repository
}

func NewUsecase(repo domain.Repository) *Usecase { return &Usecase{repo: repo} }

// Record is the single write path for audit entries. repo may be bound to
// the caller's transaction; a zero CreatedAt is stamped with the current time.
func Record(ctx context.Context, repo domain.Repository, e *domain.Entry) error {
	return record(ctx, repo, e, time.Now)
}

func record(ctx context.Context, repo domain.Repository, e *domain.Entry, now func() time.Time) error {
	switch {
	case e.WorkspaceID == "":
		return errs.Invalid("workspace_id", "is required")
	case e.EntityType == "" || e.EntityID == "":
		return errs.Invalid("entity", "is required")
	case e.Action == "":
		return errs.Invalid("action", "is required")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now().UTC()
	}
	return repo.Create(ctx, e)
}

func (u *Usecase) List(ctx context.Context, workspaceID string, before time.Time, limit int) (*Page, error) {
	list, err := u.repo.ListByWorkspace(ctx, workspaceID, before, limit)
	if err != nil {
		return nil, err
	}
	p := &Page{Entries: list}
	if len(list) == pageLimit(limit) {
		last := list[len(list)-1].CreatedAt
		p.NextBefore = &last
	}
	return p, nil
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

func pageLimit(limit int) int {
	if limit <= 0 || limit > maxLimit {
		return defaultLimit
	}
	return limit
}

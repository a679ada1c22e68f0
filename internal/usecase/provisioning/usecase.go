package provisioning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/domain/task"
	"loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/internal/domain/uow"
	"loandesk-backend/internal/domain/workspace"
	auditlog "loandesk-backend/internal/usecase/audit"
	"loandesk-backend/pkg/id"
)

const day = 24 * time.Hour

type Usecase struct {
	uow        uow.UnitOfWork
	log        logrus.FieldLogger
	seedPolicy SeedPolicy
	assign     AssignmentTable
	now        func() time.Time
}

type Option func(*Usecase)

func WithSeedPolicy(p SeedPolicy) Option { return func(u *Usecase) { u.seedPolicy = p } }

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

// WithAssignment overrides the policy used for one role.
func WithAssignment(role tasktemplate.Role, p AssignmentPolicy) Option {
	return func(u *Usecase) { u.assign[role] = p }
}

func NewUsecase(tx uow.UnitOfWork, log logrus.FieldLogger, opts ...Option) *Usecase {
	u := &Usecase{
		uow:        tx,
		log:        log,
		seedPolicy: SeedOnce,
		assign:     DefaultAssignments(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// CreateFromLoanType opens a loan file for a client on a loan type and fills
// it with one task per workspace task template. Every write happens in one
// transaction; nothing is left behind when a step fails.
func (u *Usecase) CreateFromLoanType(ctx context.Context, in CreateInput) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	log := u.log.WithFields(logrus.Fields{
		"workspace_id": in.WorkspaceID,
		"loan_type_id": in.LoanTypeID,
		"client_id":    in.ClientID,
	})

	var res *Result
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// The lock comes first so that every later plain read in this
		// transaction sees rows committed by the previous lock holder.
		_, wsErr := r.Workspaces.GetByIDForUpdate(ctx, in.WorkspaceID)
		if wsErr != nil && !errors.Is(wsErr, errs.ErrNotFound) {
			return wsErr
		}
		lt, err := r.LoanTypes.GetByID(ctx, in.WorkspaceID, in.LoanTypeID)
		if err != nil {
			return err
		}
		if wsErr != nil {
			return errs.Invalid("workspace_id", "does not exist")
		}
		if err := u.checkParticipants(ctx, r, in); err != nil {
			return err
		}

		now := u.now().UTC()
		lf := &loanfile.LoanFile{
			ID:           id.NewID32(),
			WorkspaceID:  in.WorkspaceID,
			LoanTypeID:   lt.ID,
			ClientID:     in.ClientID,
			AdvisorID:    in.AdvisorID,
			Status:       loanfile.StatusDraft,
			CurrentStage: lt.InitialStage(),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.LoanFiles.Create(ctx, lf); err != nil {
			return fmt.Errorf("create loan file: %w", err)
		}

		templates, seeded, err := u.templatesFor(ctx, r, in.WorkspaceID, in.ActorID, now)
		if err != nil {
			return err
		}
		if seeded > 0 {
			log.WithField("templates", seeded).Info("seeded default task templates")
		}

		tasks := u.instantiate(ctx, lf, templates, now)
		if err := r.Tasks.CreateBatch(ctx, tasks); err != nil {
			return fmt.Errorf("create tasks: %w", err)
		}

		if err := auditlog.Record(ctx, r.Audit, &audit.Entry{
			WorkspaceID: in.WorkspaceID,
			ActorID:     in.ActorID,
			EntityType:  "loan_file",
			EntityID:    lf.ID,
			Action:      audit.ActionLoanFileProvisioned,
			Detail:      fmt.Sprintf("loan_type=%s client=%s tasks=%d", lt.ID, in.ClientID, len(tasks)),
			CreatedAt:   now,
		}); err != nil {
			return fmt.Errorf("audit: %w", err)
		}

		res = &Result{
			LoanFileID:   lf.ID,
			TasksCreated: len(tasks),
			Message:      fmt.Sprintf("Loan file created with %d tasks", len(tasks)),
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("loan file provisioning failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{"loan_file_id": res.LoanFileID, "tasks": res.TasksCreated}).Info("loan file provisioned")
	return res, nil
}

// SeedDefaults is the administrative seeding step: it inserts the default
// catalog into an empty workspace and reports how many templates it wrote.
func (u *Usecase) SeedDefaults(ctx context.Context, workspaceID, actorID string) (int, error) {
	if workspaceID == "" {
		return 0, errs.Invalid("workspace_id", "is required")
	}
	var seeded int
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Workspaces.GetByIDForUpdate(ctx, workspaceID); err != nil {
			return err
		}
		var err error
		_, seeded, err = u.templatesFor(ctx, r, workspaceID, actorID, u.now().UTC())
		return err
	})
	if err != nil {
		return 0, err
	}
	u.log.WithFields(logrus.Fields{"workspace_id": workspaceID, "templates": seeded}).Info("default template seeding finished")
	return seeded, nil
}

// checkParticipants runs before the first write, under the workspace lock.
func (u *Usecase) checkParticipants(ctx context.Context, r uow.Repos, in CreateInput) error {
	if _, err := r.Clients.GetByID(ctx, in.WorkspaceID, in.ClientID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.Invalid("client_id", "does not exist in workspace")
		}
		return err
	}

	m, err := r.Workspaces.GetMember(ctx, in.WorkspaceID, in.AdvisorID)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return errs.Invalid("advisor_id", "is not a member of the workspace")
	case err != nil:
		return err
	case m.Role != workspace.RoleAdvisor:
		return errs.Invalid("advisor_id", "is not an advisor")
	}
	return nil
}

// templatesFor lists the workspace templates, inserting the default catalog
// first when the workspace has none and the seed policy allows it.
func (u *Usecase) templatesFor(ctx context.Context, r uow.Repos, workspaceID, actorID string, now time.Time) ([]tasktemplate.TaskTemplate, int, error) {
	list, err := r.Templates.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, 0, fmt.Errorf("list task templates: %w", err)
	}
	if len(list) > 0 {
		return list, 0, nil
	}

	if u.seedPolicy != SeedWhenEmpty {
		_, err := r.Templates.GetSeedMarker(ctx, workspaceID)
		switch {
		case err == nil:
			u.log.WithField("workspace_id", workspaceID).Warn("workspace has no task templates and was already seeded; skipping")
			return list, 0, nil
		case !errors.Is(err, errs.ErrNotFound):
			return nil, 0, fmt.Errorf("load seed marker: %w", err)
		}
	}

	// Under SeedOnce the marker insert doubles as the claim: a seeder that
	// read a stale view hits the unique key and rolls back.
	mark := r.Templates.CreateSeedMarker
	if u.seedPolicy == SeedWhenEmpty {
		mark = r.Templates.BumpSeedMarker
	}
	if err := mark(ctx, workspaceID, now); err != nil {
		return nil, 0, fmt.Errorf("mark seeded: %w", err)
	}
	defaults := DefaultTemplates(workspaceID)
	if err := r.Templates.CreateBatch(ctx, defaults); err != nil {
		return nil, 0, fmt.Errorf("seed task templates: %w", err)
	}
	if err := auditlog.Record(ctx, r.Audit, &audit.Entry{
		WorkspaceID: workspaceID,
		ActorID:     actorID,
		EntityType:  "workspace",
		EntityID:    workspaceID,
		Action:      audit.ActionTemplatesSeeded,
		Detail:      fmt.Sprintf("templates=%d", len(defaults)),
		CreatedAt:   now,
	}); err != nil {
		return nil, 0, fmt.Errorf("audit: %w", err)
	}

	list, err = r.Templates.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, 0, fmt.Errorf("list task templates: %w", err)
	}
	return list, len(defaults), nil
}

func (u *Usecase) instantiate(ctx context.Context, lf *loanfile.LoanFile, templates []tasktemplate.TaskTemplate, now time.Time) []task.Task {
	out := make([]task.Task, 0, len(templates))
	for _, tpl := range templates {
		assignee := u.assign.resolve(ctx, Assignment{
			WorkspaceID: lf.WorkspaceID,
			LoanFileID:  lf.ID,
			ClientID:    lf.ClientID,
			AdvisorID:   lf.AdvisorID,
			Template:    tpl,
		})
		out = append(out, task.Task{
			ID:             id.NewID32(),
			WorkspaceID:    lf.WorkspaceID,
			LoanFileID:     lf.ID,
			TemplateID:     tpl.ID,
			Title:          tpl.Title,
			AssigneeUserID: assignee,
			AssigneeRole:   tpl.Role,
			Instructions:   tpl.Instructions,
			Status:         task.StatusPending,
			Priority:       tpl.Priority,
			DueDate:        now.Add(time.Duration(tpl.DueInDays) * day),
			Order:          tpl.Order,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return out
}

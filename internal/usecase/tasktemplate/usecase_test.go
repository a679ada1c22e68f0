package tasktemplate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"loandesk-backend/internal/adapter/repository/gormdb"
	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/loantype"
	"loandesk-backend/internal/domain/task"
	domain "loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/internal/domain/workspace"
	"loandesk-backend/internal/testutil/dbtest"
	"loandesk-backend/pkg/id"
)

func setup(t *testing.T) (*Usecase, *gorm.DB, string) {
	t.Helper()
	db := dbtest.Open(t)
	ws := id.NewID32()
	require.NoError(t, gormdb.NewWorkspaceRepository(db).Create(context.Background(),
		&workspace.Workspace{ID: ws, Name: "W", Slug: "w", OwnerID: id.NewID32()}))
	return NewUsecase(gormdb.NewGormUoW(db)), db, ws
}

func TestCreate_DefaultsAndAppendOrder(t *testing.T) {
	uc, _, ws := setup(t)
	ctx := context.Background()

	a, err := uc.Create(ctx, ws, Input{Title: "A", Role: domain.RoleAdvisor, DueInDays: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityNormal, a.Priority)
	assert.Equal(t, 1, a.Order)

	b, err := uc.Create(ctx, ws, Input{Title: "B", Role: domain.RoleClient, Priority: domain.PriorityUrgent})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Order)

	c, err := uc.Create(ctx, ws, Input{Title: "C", Role: domain.RoleStaff, Order: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, c.Order)

	list, err := uc.List(ctx, ws)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{list[0].Title, list[1].Title, list[2].Title})
}

func TestCreate_Validation(t *testing.T) {
	uc, _, ws := setup(t)
	cases := map[string]Input{
		"blank title":   {Title: "", Role: domain.RoleStaff},
		"bad role":      {Title: "A", Role: "OWNER"},
		"bad priority":  {Title: "A", Role: domain.RoleStaff, Priority: "asap"},
		"negative days": {Title: "A", Role: domain.RoleStaff, DueInDays: -1},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), ws, in)
			assert.True(t, errs.IsValidation(err), "got %v", err)
		})
	}
}

func TestUpdate(t *testing.T) {
	uc, _, ws := setup(t)
	ctx := context.Background()
	a, err := uc.Create(ctx, ws, Input{Title: "A", Role: domain.RoleAdvisor})
	require.NoError(t, err)

	days, high := 4, domain.PriorityHigh
	got, err := uc.Update(ctx, ws, a.ID, UpdateInput{DueInDays: &days, Priority: &high})
	require.NoError(t, err)
	assert.Equal(t, 4, got.DueInDays)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, "A", got.Title)

	bad := domain.Role("nobody")
	_, err = uc.Update(ctx, ws, a.ID, UpdateInput{Role: &bad})
	assert.True(t, errs.IsValidation(err))
}

func TestDelete(t *testing.T) {
	uc, db, ws := setup(t)
	ctx := context.Background()
	used, err := uc.Create(ctx, ws, Input{Title: "Used", Role: domain.RoleStaff})
	require.NoError(t, err)
	free, err := uc.Create(ctx, ws, Input{Title: "Free", Role: domain.RoleStaff})
	require.NoError(t, err)

	require.NoError(t, gormdb.NewTaskRepository(db).CreateBatch(ctx, []task.Task{{
		ID: id.NewID32(), WorkspaceID: ws, LoanFileID: id.NewID32(), TemplateID: used.ID,
		Title: used.Title, AssigneeRole: used.Role, Status: task.StatusPending,
		Priority: used.Priority, DueDate: time.Now().UTC(),
	}}))
	assert.ErrorIs(t, uc.Delete(ctx, ws, used.ID), errs.ErrConflict)

	lt := id.NewID32()
	types := gormdb.NewLoanTypeRepository(db)
	require.NoError(t, types.Create(ctx, &loantype.LoanType{ID: lt, WorkspaceID: ws, Name: "LT", Status: loantype.StatusActive}))
	require.NoError(t, types.AttachTemplate(ctx, lt, free.ID))

	require.NoError(t, uc.Delete(ctx, ws, free.ID))
	ids, err := types.ListTemplateIDs(ctx, lt)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = uc.Get(ctx, ws, free.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

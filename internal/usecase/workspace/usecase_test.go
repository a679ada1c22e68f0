package workspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loandesk-backend/internal/adapter/repository/gormdb"
	"loandesk-backend/internal/domain/client"
	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/loantype"
	domain "loandesk-backend/internal/domain/workspace"
	"loandesk-backend/internal/testutil/dbtest"
	"loandesk-backend/pkg/id"
)

func newUsecase(t *testing.T) *Usecase {
	t.Helper()
	return NewUsecase(gormdb.NewGormUoW(dbtest.Open(t)))
}

func TestCreate_EnrollsOwnerAsAdvisor(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()
	owner := id.NewID32()

	w, err := uc.Create(ctx, CreateInput{Name: " Northside ", Slug: "North-Side", OwnerID: owner})
	require.NoError(t, err)
	assert.Len(t, w.ID, 32)
	assert.Equal(t, "Northside", w.Name)
	assert.Equal(t, "north-side", w.Slug)

	members, err := uc.ListMembers(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, owner, members[0].UserID)
	assert.Equal(t, domain.RoleAdvisor, members[0].Role)
}

func TestCreate_Validation(t *testing.T) {
	uc := newUsecase(t)
	cases := []CreateInput{
		{Name: "", Slug: "a", OwnerID: "o"},
		{Name: "A", Slug: "not a slug", OwnerID: "o"},
		{Name: "A", Slug: "a", OwnerID: ""},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.True(t, errs.IsValidation(err), "%+v -> %v", in, err)
	}
}

func TestCreate_DuplicateSlugConflicts(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, CreateInput{Name: "A", Slug: "same", OwnerID: id.NewID32()})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CreateInput{Name: "B", Slug: "same", OwnerID: id.NewID32()})
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestUpdate(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()
	a, err := uc.Create(ctx, CreateInput{Name: "A", Slug: "a", OwnerID: id.NewID32()})
	require.NoError(t, err)
	b, err := uc.Create(ctx, CreateInput{Name: "B", Slug: "b", OwnerID: id.NewID32()})
	require.NoError(t, err)

	name := "Alpha"
	got, err := uc.Update(ctx, a.ID, UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)
	assert.Equal(t, "a", got.Slug)

	taken := b.Slug
	_, err = uc.Update(ctx, a.ID, UpdateInput{Slug: &taken})
	assert.ErrorIs(t, err, domain.ErrSlugTaken)

	_, err = uc.Update(ctx, id.NewID32(), UpdateInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMembers(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()
	owner := id.NewID32()
	w, err := uc.Create(ctx, CreateInput{Name: "A", Slug: "a", OwnerID: owner})
	require.NoError(t, err)

	staff := id.NewID32()
	_, err = uc.AddMember(ctx, w.ID, MemberInput{UserID: staff, Role: domain.RoleStaff})
	require.NoError(t, err)

	_, err = uc.AddMember(ctx, w.ID, MemberInput{UserID: staff, Role: domain.RoleAdvisor})
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)

	_, err = uc.AddMember(ctx, w.ID, MemberInput{UserID: id.NewID32(), Role: "CLIENT"})
	assert.True(t, errs.IsValidation(err))

	_, err = uc.AddMember(ctx, id.NewID32(), MemberInput{UserID: staff, Role: domain.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.RemoveMember(ctx, w.ID, owner), errs.ErrConflict)
	require.NoError(t, uc.RemoveMember(ctx, w.ID, staff))
	assert.ErrorIs(t, uc.RemoveMember(ctx, w.ID, staff), domain.ErrMemberNotFound)

	members, err := uc.ListMembers(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestDelete(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()
	w, err := uc.Create(ctx, CreateInput{Name: "A", Slug: "a", OwnerID: id.NewID32()})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, w.ID))
	_, err = uc.Get(ctx, w.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDelete_RefusesWhileContentRemains(t *testing.T) {
	db := dbtest.Open(t)
	uc := NewUsecase(gormdb.NewGormUoW(db))
	ctx := context.Background()
	w, err := uc.Create(ctx, CreateInput{Name: "A", Slug: "a", OwnerID: id.NewID32()})
	require.NoError(t, err)

	clients := gormdb.NewClientRepository(db)
	c := &client.Client{ID: id.NewID32(), WorkspaceID: w.ID, Name: "C", Email: "c@example.com"}
	require.NoError(t, clients.Create(ctx, c))

	err = uc.Delete(ctx, w.ID)
	assert.ErrorIs(t, err, domain.ErrNotEmpty)
	assert.ErrorIs(t, err, errs.ErrConflict)
	members, err := uc.ListMembers(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	require.NoError(t, clients.Delete(ctx, w.ID, c.ID))
	lt := &loantype.LoanType{ID: id.NewID32(), WorkspaceID: w.ID, Name: "LT", Status: loantype.StatusActive}
	require.NoError(t, gormdb.NewLoanTypeRepository(db).Create(ctx, lt))
	assert.ErrorIs(t, uc.Delete(ctx, w.ID), domain.ErrNotEmpty)

	require.NoError(t, gormdb.NewLoanTypeRepository(db).Delete(ctx, w.ID, lt.ID))
	require.NoError(t, uc.Delete(ctx, w.ID))

	var n int64
	require.NoError(t, db.Model(&domain.Member{}).Where("workspace_id = ?", w.ID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDelete_UnknownWorkspace(t *testing.T) {
	assert.ErrorIs(t, newUsecase(t).Delete(context.Background(), id.NewID32()), domain.ErrNotFound)
}

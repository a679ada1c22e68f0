package loanfilemock

import (
	"context"
	"errors"
	"testing"

	domain "loandesk-backend/internal/domain/loanfile"
)

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	if err := m.Create(ctx, &domain.LoanFile{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if _, err := m.GetByID(ctx, "w", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID default: want ErrNotFound, got %v", err)
	}
	if _, err := m.GetByIDForUpdate(ctx, "w", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByIDForUpdate default: want ErrNotFound, got %v", err)
	}
	if n, err := m.CountByLoanType(ctx, "w", "lt"); err != nil || n != 0 {
		t.Fatalf("CountByLoanType default: n=%d err=%v", n, err)
	}
}

func TestRepo_ForwardsToFuncs(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("boom")
	f := &domain.LoanFile{ID: "lf1"}

	var saved *domain.LoanFile
	m := &Repo{
		GetByIDForUpdateFn: func(_ context.Context, ws, id string) (*domain.LoanFile, error) {
			if ws != "w" || id != "lf1" {
				t.Fatalf("GetByIDForUpdate args: %s %s", ws, id)
			}
			return f, nil
		},
		SaveFn: func(_ context.Context, got *domain.LoanFile) error {
			saved = got
			return wantErr
		},
	}
	got, err := m.GetByIDForUpdate(ctx, "w", "lf1")
	if err != nil || got != f {
		t.Fatalf("GetByIDForUpdate: got %+v err %v", got, err)
	}
	if err := m.Save(ctx, f); !errors.Is(err, wantErr) {
		t.Fatalf("Save: want %v, got %v", wantErr, err)
	}
	if saved != f {
		t.Fatalf("Save arg not forwarded")
	}
}

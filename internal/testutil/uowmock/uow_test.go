package uowmock

import (
	"context"
	"errors"
	"testing"

	"loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/domain/uow"
	"loandesk-backend/internal/testutil/loanfilemock"
	"loandesk-backend/internal/testutil/taskmock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	files := &loanfilemock.Repo{}
	tasks := &taskmock.Repo{}
	repos := uow.Repos{LoanFiles: files, Tasks: tasks}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			if fn == nil {
				t.Fatalf("WithinTx: fn is nil")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.LoanFiles != files || r.Tasks != tasks {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("boom")

	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error {
			return sentinel
		},
	}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	err := m.WithinLoanFileTx(ctx, "w", "lf", func(uow.Repos, *loanfile.LoanFile) error { return nil })
	if !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinLoanFileTx default: want errUnimplemented, got %v", err)
	}
}

func TestUoW_WithinLoanFileTx_Happy(t *testing.T) {
	ctx := context.Background()
	lock := &loanfile.LoanFile{ID: "lf7", WorkspaceID: "w1"}

	innerCalled := false
	m := &UoW{
		WithinLoanFileTxFn: func(gotCtx context.Context, ws, id string, fn func(r uow.Repos, f *loanfile.LoanFile) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinLoanFileTx: ctx mismatch")
			}
			if ws != "w1" || id != "lf7" {
				t.Fatalf("WithinLoanFileTx: ids mismatch, got %s/%s", ws, id)
			}
			return fn(uow.Repos{}, lock)
		},
	}

	err := m.WithinLoanFileTx(ctx, "w1", "lf7", func(_ uow.Repos, f *loanfile.LoanFile) error {
		innerCalled = true
		if f != lock {
			t.Fatalf("WithinLoanFileTx: loan file not forwarded correctly: %+v", f)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinLoanFileTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinLoanFileTx: inner fn not called")
	}
}

func TestPassthrough_LoadsLoanFile(t *testing.T) {
	ctx := context.Background()
	lf := &loanfile.LoanFile{ID: "lf1"}
	files := &loanfilemock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, ws, id string) (*loanfile.LoanFile, error) {
			if id == "lf1" {
				return lf, nil
			}
			return nil, loanfile.ErrNotFound
		},
	}
	m := Passthrough(uow.Repos{LoanFiles: files})

	var got *loanfile.LoanFile
	if err := m.WithinLoanFileTx(ctx, "w", "lf1", func(_ uow.Repos, f *loanfile.LoanFile) error {
		got = f
		return nil
	}); err != nil {
		t.Fatalf("Passthrough: %v", err)
	}
	if got != lf {
		t.Fatalf("Passthrough: wrong loan file")
	}

	err := m.WithinLoanFileTx(ctx, "w", "missing", func(uow.Repos, *loanfile.LoanFile) error {
		t.Fatalf("body must not run")
		return nil
	})
	if !errors.Is(err, loanfile.ErrNotFound) {
		t.Fatalf("Passthrough missing: want ErrNotFound, got %v", err)
	}
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New()
	if m.WithinTxFn != nil || m.WithinLoanFileTxFn != nil {
		t.Fatalf("New should start with nil funcs")
	}

	m.WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinLoanFileTx(func(context.Context, string, string, func(uow.Repos, *loanfile.LoanFile) error) error { return nil })

	if m.WithinTxFn == nil || m.WithinLoanFileTxFn == nil {
		t.Fatalf("fluent setters didn't assign funcs")
	}

	m.Reset()
	if m.WithinTxFn != nil || m.WithinLoanFileTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}

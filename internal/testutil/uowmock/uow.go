package uowmock

import (
	"context"
	"errors"

	"loandesk-backend/internal/domain/loanfile"
	"loandesk-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanFileTxFn func(ctx context.Context, workspaceID, loanFileID string, fn func(r uow.Repos, f *loanfile.LoanFile) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinLoanFileTx(fn func(context.Context, string, string, func(uow.Repos, *loanfile.LoanFile) error) error) *UoW {
	m.WithinLoanFileTxFn = fn
	return m
}

// Passthrough runs every body against repos without a real transaction.
// WithinLoanFileTx loads the file through repos.LoanFiles.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) },
		WithinLoanFileTxFn: func(ctx context.Context, ws, id string, fn func(uow.Repos, *loanfile.LoanFile) error) error {
			f, err := repos.LoanFiles.GetByIDForUpdate(ctx, ws, id)
			if err != nil {
				return err
			}
			return fn(repos, f)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinLoanFileTx(ctx context.Context, workspaceID, loanFileID string, fn func(r uow.Repos, f *loanfile.LoanFile) error) error {
	if m.WithinLoanFileTxFn != nil {
		return m.WithinLoanFileTxFn(ctx, workspaceID, loanFileID, fn)
	}
	return errUnimplemented
}

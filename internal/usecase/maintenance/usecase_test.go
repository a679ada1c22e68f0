package maintenance

import (
	"context"
	"errors"
	"testing"

	"loandesk-backend/internal/infrastructure/logging"
	"loandesk-backend/internal/testutil/taskmock"
)

func TestBackfillTaskWorkspace(t *testing.T) {
	calls := 0
	repo := &taskmock.Repo{
		SyncWorkspaceFromLoanFilesFn: func(context.Context) (int64, error) {
			calls++
			return 3, nil
		},
	}
	n, err := NewUsecase(repo, logging.Discard()).BackfillTaskWorkspace(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if n != 3 || calls != 1 {
		t.Fatalf("n=%d calls=%d", n, calls)
	}
}

func TestBackfillTaskWorkspace_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	repo := &taskmock.Repo{
		SyncWorkspaceFromLoanFilesFn: func(context.Context) (int64, error) { return 0, boom },
	}
	_, err := NewUsecase(repo, logging.Discard()).BackfillTaskWorkspace(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped boom, got %v", err)
	}
}

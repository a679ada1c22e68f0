package message

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"loandesk-backend/internal/domain/errs"
	"loandesk-backend/internal/domain/loanfile"
	domain "loandesk-backend/internal/domain/message"
	"loandesk-backend/pkg/id"
)

const maxBodyRunes = 10000

type CreateInput struct {
	SenderID string `json:"-"`
	Body     string `json:"body"`
}

// Page holds one slice of a conversation, newest first. NextBefore is the
// cursor for the following page and is nil on the last one.
type Page struct {
	Messages   []domain.Message `json:"messages"`
	NextBefore *time.Time       `json:"next_before,omitempty"`
}

type Usecase struct {
	messages domain.Repository
	files    loanfile.Repository
}

func NewUsecase(messages domain.Repository, files loanfile.Repository) *Usecase {
	return &Usecase{messages: messages, files: files}
}

func (u *Usecase) Create(ctx context.Context, workspaceID, loanFileID string, in CreateInput) (*domain.Message, error) {
	body := strings.TrimSpace(in.Body)
	switch {
	case in.SenderID == "":
		return nil, errs.Invalid("sender_id", "is required")
	case body == "":
		return nil, errs.Invalid("body", "is required")
	case utf8.RuneCountInString(body) > maxBodyRunes:
		return nil, errs.Invalid("body", "is too long")
	}
	if _, err := u.files.GetByID(ctx, workspaceID, loanFileID); err != nil {
		return nil, err
	}
	m := &domain.Message{
		ID:          id.NewID32(),
		WorkspaceID: workspaceID,
		LoanFileID:  loanFileID,
		SenderID:    in.SenderID,
		Body:        body,
	}
	if err := u.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *Usecase) List(ctx context.Context, workspaceID, loanFileID string, before time.Time, limit int) (*Page, error) {
	if _, err := u.files.GetByID(ctx, workspaceID, loanFileID); err != nil {
		return nil, err
	}
	list, err := u.messages.ListByLoanFile(ctx, workspaceID, loanFileID, before, limit)
	if err != nil {
		return nil, err
	}
	p := &Page{Messages: list}
	if len(list) == pageLimit(limit) {
		last := list[len(list)-1].CreatedAt
		p.NextBefore = &last
	}
	return p, nil
}

func (u *Usecase) Delete(ctx context.Context, workspaceID, messageID string) error {
	return u.messages.Delete(ctx, workspaceID, messageID)
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

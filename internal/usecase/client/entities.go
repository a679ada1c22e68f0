package client

import (
	"net/mail"
	"strings"

	"loandesk-backend/internal/domain/errs"
)

type CreateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (in *CreateInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" {
		return errs.Invalid("name", "is required")
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(in.Email))
	if err != nil {
		return errs.Invalid("email", "must be a valid email address")
	}
	// stored bare so "Bob <bob@x.io>" and "bob@x.io" share the unique key
	in.Email = strings.ToLower(addr.Address)
	return nil
}

type UpdateInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

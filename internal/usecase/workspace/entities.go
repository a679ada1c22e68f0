package workspace

import (
	"regexp"
	"strings"

	"loandesk-backend/internal/domain/errs"
	domain "loandesk-backend/internal/domain/workspace"
)

var reSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CreateInput struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	OwnerID string `json:"owner_id"`
}

func (in *CreateInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.ToLower(strings.TrimSpace(in.Slug))
	switch {
	case in.Name == "":
		return errs.Invalid("name", "is required")
	case !reSlug.MatchString(in.Slug):
		return errs.Invalid("slug", "must be lowercase letters, digits and dashes")
	case in.OwnerID == "":
		return errs.Invalid("owner_id", "is required")
	}
	return nil
}

// UpdateInput leaves nil fields untouched.
type UpdateInput struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type MemberInput struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

package tasktemplate

import (
	"strings"

	"loandesk-backend/internal/domain/errs"
	domain "loandesk-backend/internal/domain/tasktemplate"
)

type Input struct {
	Title            string          `json:"title"`
	Role             domain.Role     `json:"role"`
	Instructions     string          `json:"instructions"`
	Required         bool            `json:"required"`
	DueInDays        int             `json:"due_in_days"`
	AllowAttachments bool            `json:"allow_attachments"`
	Priority         domain.Priority `json:"priority"`
	Order            int             `json:"order"`
}

type UpdateInput struct {
	Title            *string          `json:"title"`
	Role             *domain.Role     `json:"role"`
	Instructions     *string          `json:"instructions"`
	Required         *bool            `json:"required"`
	DueInDays        *int             `json:"due_in_days"`
	AllowAttachments *bool            `json:"allow_attachments"`
	Priority         *domain.Priority `json:"priority"`
	Order            *int             `json:"order"`
}

func (in *Input) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Priority == "" {
		in.Priority = domain.PriorityNormal
	}
	switch {
	case in.Title == "":
		return errs.Invalid("title", "is required")
	case !in.Role.Valid():
		return errs.Invalid("role", "must be ADVISOR, STAFF or CLIENT")
	case !in.Priority.Valid():
		return errs.Invalid("priority", "must be low, normal, high or urgent")
	case in.DueInDays < 0:
		return errs.Invalid("due_in_days", "must not be negative")
	case in.Order < 0:
		return errs.Invalid("order", "must not be negative")
	}
	return nil
}

func fromEntity(t *domain.TaskTemplate) Input {
	return Input{
		Title:            t.Title,
		Role:             t.Role,
		Instructions:     t.Instructions,
		Required:         t.Required,
		DueInDays:        t.DueInDays,
		AllowAttachments: t.AllowAttachments,
		Priority:         t.Priority,
		Order:            t.Order,
	}
}

func (in UpdateInput) apply(base Input) Input {
	if in.Title != nil {
		base.Title = *in.Title
	}
	if in.Role != nil {
		base.Role = *in.Role
	}
	if in.Instructions != nil {
		base.Instructions = *in.Instructions
	}
	if in.Required != nil {
		base.Required = *in.Required
	}
	if in.DueInDays != nil {
		base.DueInDays = *in.DueInDays
	}
	if in.AllowAttachments != nil {
		base.AllowAttachments = *in.AllowAttachments
	}
	if in.Priority != nil {
		base.Priority = *in.Priority
	}
	if in.Order != nil {
		base.Order = *in.Order
	}
	return base
}

func assign(t *domain.TaskTemplate, in Input) {
	t.Title = in.Title
	t.Role = in.Role
	t.Instructions = in.Instructions
	t.Required = in.Required
	t.DueInDays = in.DueInDays
	t.AllowAttachments = in.AllowAttachments
	t.Priority = in.Priority
	t.Order = in.Order
}

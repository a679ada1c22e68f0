package loantype

import (
	"strings"

	"loandesk-backend/internal/domain/errs"
	domain "loandesk-backend/internal/domain/loantype"
)

type Input struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Stages      []string      `json:"stages"`
	MinAmount   float64       `json:"min_amount"`
	MaxAmount   float64       `json:"max_amount"`
	MinRate     float64       `json:"min_rate"`
	MaxRate     float64       `json:"max_rate"`
	Status      domain.Status `json:"status"`
}

// UpdateInput leaves nil fields untouched.
type UpdateInput struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Category    *string        `json:"category"`
	Stages      *[]string      `json:"stages"`
	MinAmount   *float64       `json:"min_amount"`
	MaxAmount   *float64       `json:"max_amount"`
	MinRate     *float64       `json:"min_rate"`
	MaxRate     *float64       `json:"max_rate"`
	Status      *domain.Status `json:"status"`
}

func (in *Input) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return errs.Invalid("name", "is required")
	}
	if in.Status == "" {
		in.Status = domain.StatusActive
	}
	if in.Status != domain.StatusActive && in.Status != domain.StatusInactive {
		return errs.Invalid("status", "must be active or inactive")
	}

	seen := make(map[string]bool, len(in.Stages))
	stages := make([]string, 0, len(in.Stages))
	for _, s := range in.Stages {
		s = strings.TrimSpace(s)
		if s == "" {
			return errs.Invalid("stages", "must not contain blank names")
		}
		if seen[s] {
			return errs.Invalid("stages", "must not repeat "+s)
		}
		seen[s] = true
		stages = append(stages, s)
	}
	in.Stages = stages

	switch {
	case in.MinAmount < 0 || in.MaxAmount < 0:
		return errs.Invalid("min_amount", "must not be negative")
	case in.MinRate < 0 || in.MaxRate < 0:
		return errs.Invalid("min_rate", "must not be negative")
	case in.MaxAmount > 0 && in.MinAmount > in.MaxAmount:
		return errs.Invalid("min_amount", "must not exceed max_amount")
	case in.MaxRate > 0 && in.MinRate > in.MaxRate:
		return errs.Invalid("min_rate", "must not exceed max_rate")
	}
	return nil
}

func fromEntity(l *domain.LoanType) Input {
	return Input{
		Name:        l.Name,
		Description: l.Description,
		Category:    l.Category,
		Stages:      append([]string(nil), l.Stages...),
		MinAmount:   l.MinAmount,
		MaxAmount:   l.MaxAmount,
		MinRate:     l.MinRate,
		MaxRate:     l.MaxRate,
		Status:      l.Status,
	}
}

func (in UpdateInput) apply(base Input) Input {
	if in.Name != nil {
		base.Name = *in.Name
	}
	if in.Description != nil {
		base.Description = *in.Description
	}
	if in.Category != nil {
		base.Category = *in.Category
	}
	if in.Stages != nil {
		base.Stages = *in.Stages
	}
	if in.MinAmount != nil {
		base.MinAmount = *in.MinAmount
	}
	if in.MaxAmount != nil {
		base.MaxAmount = *in.MaxAmount
	}
	if in.MinRate != nil {
		base.MinRate = *in.MinRate
	}
	if in.MaxRate != nil {
		base.MaxRate = *in.MaxRate
	}
	if in.Status != nil {
		base.Status = *in.Status
	}
	return base
}

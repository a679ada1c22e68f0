package provisioning

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"loandesk-backend/internal/domain/tasktemplate"
	"loandesk-backend/pkg/id"
)

//go:embed default_templates.yaml
var defaultCatalogYAML []byte

type catalogEntry struct {
	Title            string                `yaml:"title"`
	Role             tasktemplate.Role     `yaml:"role"`
	DueInDays        int                   `yaml:"due_in_days"`
	Priority         tasktemplate.Priority `yaml:"priority"`
	Required         bool                  `yaml:"required"`
	AllowAttachments bool                  `yaml:"allow_attachments"`
	Instructions     string                `yaml:"instructions"`
}

var defaultCatalog = mustParseCatalog(defaultCatalogYAML)

func parseCatalog(b []byte) ([]catalogEntry, error) {
	var out []catalogEntry
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, e := range out {
		switch {
		case e.Title == "":
			return nil, fmt.Errorf("catalog entry %d: missing title", i)
		case !e.Role.Valid():
			return nil, fmt.Errorf("catalog entry %q: bad role %q", e.Title, e.Role)
		case !e.Priority.Valid():
			return nil, fmt.Errorf("catalog entry %q: bad priority %q", e.Title, e.Priority)
		case e.DueInDays < 0:
			return nil, fmt.Errorf("catalog entry %q: negative due_in_days", e.Title)
		}
	}
	return out, nil
}

func mustParseCatalog(b []byte) []catalogEntry {
	out, err := parseCatalog(b)
	if err != nil {
		panic(err)
	}
	return out
}

// DefaultTemplates materializes the default catalog for a workspace, with
// fresh ids and display order following catalog position.
func DefaultTemplates(workspaceID string) []tasktemplate.TaskTemplate {
	out := make([]tasktemplate.TaskTemplate, 0, len(defaultCatalog))
	for i, e := range defaultCatalog {
		out = append(out, tasktemplate.TaskTemplate{
			ID:               id.NewID32(),
			WorkspaceID:      workspaceID,
			Title:            e.Title,
			Role:             e.Role,
			Instructions:     e.Instructions,
			Required:         e.Required,
			DueInDays:        e.DueInDays,
			AllowAttachments: e.AllowAttachments,
			Priority:         e.Priority,
			Order:            i + 1,
		})
	}
	return out
}

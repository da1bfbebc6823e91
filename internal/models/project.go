package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/types"
)

// Project is the aggregate root: five scalar attributes plus three child
// collections. Projects returned by a bulk listing carry empty child
// collections; only a fetch by id loads them.
type Project struct {
	ID             types.ProjectID `json:"project_id"`
	Name           string          `json:"project_name"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	ActualHours    decimal.Decimal `json:"actual_hours"`
	Difficulty     int             `json:"difficulty"`
	Notes          string          `json:"notes,omitempty"`

	Materials  []Material `json:"materials"`
	Steps      []Step     `json:"steps"`
	Categories []Category `json:"categories"`
}

// NewProject returns a project with initialized, empty child collections.
func NewProject() *Project {
	return &Project{
		Materials:  []Material{},
		Steps:      []Step{},
		Categories: []Category{},
	}
}

// GetID satisfies the quiet-mode id extraction of the CLI output formatter
func (p *Project) GetID() int {
	return p.ID.ToInt()
}

func (p *Project) String() string {
	return fmt.Sprintf("ID=%d, name=%s, estimated=%s, actual=%s, difficulty=%d",
		p.ID, p.Name, p.EstimatedHours.StringFixed(2), p.ActualHours.StringFixed(2), p.Difficulty)
}

// Material is something a project consumes
type Material struct {
	ID          types.MaterialID `json:"material_id"`
	ProjectID   types.ProjectID  `json:"project_id"`
	Name        string           `json:"material_name"`
	NumRequired int              `json:"num_required"`
	Cost        decimal.Decimal  `json:"cost"`
}

// Step is one instruction of a project. Order defines the display order.
type Step struct {
	ID        types.StepID    `json:"step_id"`
	ProjectID types.ProjectID `json:"project_id"`
	Text      string          `json:"step_text"`
	Order     int             `json:"step_order"`
}

// Category is linked to projects through the project_category association
type Category struct {
	ID   types.CategoryID `json:"category_id"`
	Name string           `json:"category_name"`
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/models"
	"github.com/thenoetrevino/projects/internal/types"
)

// Select lists matching the scan order of the extractor below
const (
	projectColumns  = "project_id, project_name, estimated_hours, actual_hours, difficulty, notes"
	materialColumns = "material_id, project_id, material_name, num_required, cost"
	stepColumns     = "step_id, project_id, step_text, step_order"
	categoryColumns = "c.category_id, c.category_name"
)

// RowExtractor maps one result row onto one entity
type RowExtractor interface {
	Project(row RowScanner) (*models.Project, error)
	Material(row RowScanner) (models.Material, error)
	Step(row RowScanner) (models.Step, error)
	Category(row RowScanner) (models.Category, error)
}

type columnExtractor struct{}

// NewRowExtractor returns the extractor matching the repository select lists
func NewRowExtractor() RowExtractor {
	return columnExtractor{}
}

func (columnExtractor) Project(row RowScanner) (*models.Project, error) {
	var (
		id         int64
		name       string
		estimated  decimal.NullDecimal
		actual     decimal.NullDecimal
		difficulty sql.NullInt64
		notes      sql.NullString
	)
	if err := row.Scan(&id, &name, &estimated, &actual, &difficulty, &notes); err != nil {
		return nil, fmt.Errorf("failed to scan project row: %w", err)
	}

	p := models.NewProject()
	p.ID = types.ProjectID(id)
	p.Name = name
	p.EstimatedHours = nullDecimalToDecimal(estimated)
	p.ActualHours = nullDecimalToDecimal(actual)
	p.Difficulty = int(difficulty.Int64)
	p.Notes = nullStringToString(notes)
	return p, nil
}

func (columnExtractor) Material(row RowScanner) (models.Material, error) {
	var (
		m           models.Material
		id          int64
		projectID   int64
		numRequired sql.NullInt64
		cost        decimal.NullDecimal
	)
	if err := row.Scan(&id, &projectID, &m.Name, &numRequired, &cost); err != nil {
		return models.Material{}, fmt.Errorf("failed to scan material row: %w", err)
	}
	m.ID = types.MaterialID(id)
	m.ProjectID = types.ProjectID(projectID)
	m.NumRequired = int(numRequired.Int64)
	m.Cost = nullDecimalToDecimal(cost)
	return m, nil
}

func (columnExtractor) Step(row RowScanner) (models.Step, error) {
	var (
		s         models.Step
		id        int64
		projectID int64
	)
	if err := row.Scan(&id, &projectID, &s.Text, &s.Order); err != nil {
		return models.Step{}, fmt.Errorf("failed to scan step row: %w", err)
	}
	s.ID = types.StepID(id)
	s.ProjectID = types.ProjectID(projectID)
	return s, nil
}

func (columnExtractor) Category(row RowScanner) (models.Category, error) {
	var (
		c  models.Category
		id int64
	)
	if err := row.Scan(&id, &c.Name); err != nil {
		return models.Category{}, fmt.Errorf("failed to scan category row: %w", err)
	}
	c.ID = types.CategoryID(id)
	return c, nil
}

// nullDecimalToDecimal converts a nullable column to a two-digit decimal.
// NULL becomes zero.
func nullDecimalToDecimal(nd decimal.NullDecimal) decimal.Decimal {
	if !nd.Valid {
		return decimal.Zero
	}
	return nd.Decimal.Round(2)
}

// nullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

package menu

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/models"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

var errDifficultyRange = fmt.Errorf("difficulty must be between %d and %d, please try again",
	projectservice.MinDifficulty, projectservice.MaxDifficulty)

// projectFields holds the raw answers of a project form
type projectFields struct {
	name       string
	estimated  string
	actual     string
	difficulty string
	notes      string
}

// createProjectForm prompts for every attribute of a new project.
// Blank hours mean zero; difficulty is asked for until it is in range.
func createProjectForm(f *projectFields) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Enter the project name:").
			Value(&f.name),

		huh.NewInput().
			Key("estimated").
			Title("Enter the estimated hours:").
			Validate(validateHours).
			Value(&f.estimated),

		huh.NewInput().
			Key("actual").
			Title("Enter the actual hours:").
			Validate(validateHours).
			Value(&f.actual),

		huh.NewInput().
			Key("difficulty").
			Title(fmt.Sprintf("Enter the project difficulty (%d-%d):",
				projectservice.MinDifficulty, projectservice.MaxDifficulty)).
			Validate(validateDifficulty(true)).
			Value(&f.difficulty),

		huh.NewInput().
			Key("notes").
			Title("Enter the project notes:").
			Value(&f.notes),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// updateProjectForm prompts for new values showing the current ones in
// brackets. A blank answer keeps the current value.
func updateProjectForm(f *projectFields, cur *models.Project) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title(fmt.Sprintf("Enter the project name [%s]:", cur.Name)).
			Value(&f.name),

		huh.NewInput().
			Key("estimated").
			Title(fmt.Sprintf("Enter the estimated hours [%s]:", cur.EstimatedHours.StringFixed(cli.HoursScale))).
			Validate(validateHours).
			Value(&f.estimated),

		huh.NewInput().
			Key("actual").
			Title(fmt.Sprintf("Enter the actual hours [%s]:", cur.ActualHours.StringFixed(cli.HoursScale))).
			Validate(validateHours).
			Value(&f.actual),

		huh.NewInput().
			Key("difficulty").
			Title(fmt.Sprintf("Enter the project difficulty (%d-%d) [%d]:",
				projectservice.MinDifficulty, projectservice.MaxDifficulty, cur.Difficulty)).
			Validate(validateDifficulty(false)).
			Value(&f.difficulty),

		huh.NewInput().
			Key("notes").
			Title(fmt.Sprintf("Enter the project notes [%s]:", cur.Notes)).
			Value(&f.notes),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func validateHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := cli.ParseHours(s)
	return err
}

func validateDifficulty(required bool) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" && !required {
			return nil
		}
		n, err := cli.ParseInt(s)
		if err != nil || n < projectservice.MinDifficulty || n > projectservice.MaxDifficulty {
			return errDifficultyRange
		}
		return nil
	}
}

// createRequest converts the answers of a create form
func (f *projectFields) createRequest() (projectservice.CreateProjectRequest, error) {
	estimated, err := hoursOrZero(f.estimated)
	if err != nil {
		return projectservice.CreateProjectRequest{}, err
	}
	actual, err := hoursOrZero(f.actual)
	if err != nil {
		return projectservice.CreateProjectRequest{}, err
	}
	difficulty, err := cli.ParseInt(f.difficulty)
	if err != nil {
		return projectservice.CreateProjectRequest{}, errors.Join(errDifficultyRange, err)
	}

	return projectservice.CreateProjectRequest{
		Name:           strings.TrimSpace(f.name),
		EstimatedHours: estimated,
		ActualHours:    actual,
		Difficulty:     difficulty,
		Notes:          strings.TrimSpace(f.notes),
	}, nil
}

// updateRequest converts the answers of an update form. Blank answers are
// left nil so the stored values are kept.
func (f *projectFields) updateRequest(cur *models.Project) (projectservice.UpdateProjectRequest, error) {
	req := projectservice.UpdateProjectRequest{ID: cur.ID}

	if name := strings.TrimSpace(f.name); name != "" {
		req.Name = &name
	}
	if strings.TrimSpace(f.estimated) != "" {
		d, err := cli.ParseHours(f.estimated)
		if err != nil {
			return req, err
		}
		req.EstimatedHours = &d
	}
	if strings.TrimSpace(f.actual) != "" {
		d, err := cli.ParseHours(f.actual)
		if err != nil {
			return req, err
		}
		req.ActualHours = &d
	}
	if strings.TrimSpace(f.difficulty) != "" {
		n, err := cli.ParseInt(f.difficulty)
		if err != nil {
			return req, err
		}
		req.Difficulty = &n
	}
	if notes := strings.TrimSpace(f.notes); notes != "" {
		req.Notes = &notes
	}
	return req, nil
}

func hoursOrZero(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return cli.ParseHours(s)
}

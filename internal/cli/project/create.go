package project

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  projects project create --name="Birdhouse" --difficulty=2

  # JSON output for agents
  projects project create --name="Birdhouse" --difficulty=2 --json

  # Quiet mode for bash capture
  PROJECT_ID=$(projects project create --name="Birdhouse" --difficulty=2 --quiet)

  # With hours and notes
  projects project create \
    --name="Birdhouse" \
    --difficulty=2 \
    --estimated-hours=4.5 \
    --notes="Use cedar boards"
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Int("difficulty", 0, "Difficulty from 1 to 5 (required)")
	if err := cmd.MarkFlagRequired("difficulty"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("estimated-hours", "0", "Estimated hours")
	cmd.Flags().String("actual-hours", "0", "Actual hours")
	cmd.Flags().String("notes", "", "Project notes (markdown)")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	estimatedStr, _ := cmd.Flags().GetString("estimated-hours")
	actualStr, _ := cmd.Flags().GetString("actual-hours")
	notes, _ := cmd.Flags().GetString("notes")

	estimated, err := cli.ParseHours(estimatedStr)
	if err != nil {
		return formatter.Fail("VALIDATION_ERROR", err)
	}
	actual, err := cli.ParseHours(actualStr)
	if err != nil {
		return formatter.Fail("VALIDATION_ERROR", err)
	}

	svc, err := service(cmd, formatter)
	if err != nil {
		return err
	}

	project, err := svc.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:           name,
		EstimatedHours: estimated,
		ActualHours:    actual,
		Difficulty:     difficulty,
		Notes:          notes,
	})
	if err != nil {
		return formatter.Fail("PROJECT_CREATE_ERROR", err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		return formatter.Success(project)
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"project": project})
	}

	// Human-readable output
	formatter.Printf("✓ Project '%s' created successfully (ID: %d)\n", project.Name, project.ID)
	return nil
}

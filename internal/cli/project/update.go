package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
	"github.com/thenoetrevino/projects/internal/types"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update project details",
		Long: `Update the details of a project. Only the flags that are given change.

Examples:
  projects project update --id=1 --actual-hours=5.25
  projects project update --id=1 --name="Bird feeder" --difficulty=3
`,
		RunE: runUpdate,
	}

	addRequiredIDFlag(cmd)

	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("estimated-hours", "", "New estimated hours")
	cmd.Flags().String("actual-hours", "", "New actual hours")
	cmd.Flags().Int("difficulty", 0, "New difficulty from 1 to 5")
	cmd.Flags().String("notes", "", "New project notes")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, _ := cmd.Flags().GetInt("id")
	req := projectservice.UpdateProjectRequest{ID: types.ProjectIDFromInt(projectID)}

	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("estimated-hours") {
		s, _ := cmd.Flags().GetString("estimated-hours")
		hours, err := cli.ParseHours(s)
		if err != nil {
			return formatter.Fail("VALIDATION_ERROR", err)
		}
		req.EstimatedHours = &hours
	}
	if cmd.Flags().Changed("actual-hours") {
		s, _ := cmd.Flags().GetString("actual-hours")
		hours, err := cli.ParseHours(s)
		if err != nil {
			return formatter.Fail("VALIDATION_ERROR", err)
		}
		req.ActualHours = &hours
	}
	if cmd.Flags().Changed("difficulty") {
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		req.Difficulty = &difficulty
	}
	if cmd.Flags().Changed("notes") {
		notes, _ := cmd.Flags().GetString("notes")
		req.Notes = &notes
	}

	svc, err := service(cmd, formatter)
	if err != nil {
		return err
	}

	project, err := svc.UpdateProject(ctx, req)
	if err != nil {
		return formatter.Fail("PROJECT_UPDATE_ERROR", err)
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"project": project})
	}

	formatter.Printf("✓ Project %d updated successfully\n", project.ID)
	return nil
}

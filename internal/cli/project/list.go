package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects ordered by name.",
		RunE:  runList,
	}

	addOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	svc, err := service(cmd, formatter)
	if err != nil {
		return err
	}

	projects, err := svc.GetAllProjects(ctx)
	if err != nil {
		return formatter.Fail("PROJECT_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		// Just print IDs (one per line)
		for _, p := range projects {
			if err := formatter.Success(p); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"projects": projects})
	}

	// Human-readable output
	if len(projects) == 0 {
		formatter.Println("No projects found")
		return nil
	}

	formatter.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		formatter.Printf("  [%d] %s (difficulty %d, %s/%s hours)\n",
			p.ID, p.Name, p.Difficulty, p.ActualHours.StringFixed(2), p.EstimatedHours.StringFixed(2))
	}

	return nil
}

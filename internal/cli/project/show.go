package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/cli/styles"
	"github.com/thenoetrevino/projects/internal/types"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a project with its materials, steps and categories",
		RunE:  runShow,
	}

	addRequiredIDFlag(cmd)
	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, _ := cmd.Flags().GetInt("id")

	svc, err := service(cmd, formatter)
	if err != nil {
		return err
	}

	project, err := svc.GetProjectByID(ctx, types.ProjectIDFromInt(projectID))
	if err != nil {
		return formatter.Fail("PROJECT_NOT_FOUND", err)
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"project": project})
	}

	formatter.Println(styles.RenderProject(project))
	return nil
}

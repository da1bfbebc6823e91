package project

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/types"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		Long: `Delete a project by ID together with its materials, steps and category links.
Requires confirmation unless --force, --json or --quiet is given.`,
		RunE: runDelete,
	}

	addRequiredIDFlag(cmd)

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	addOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, _ := cmd.Flags().GetInt("id")
	force, _ := cmd.Flags().GetBool("force")
	id := types.ProjectIDFromInt(projectID)

	svc, err := service(cmd, formatter)
	if err != nil {
		return err
	}

	// Get project details for confirmation
	project, err := svc.GetProjectByID(ctx, id)
	if err != nil {
		return formatter.Fail("PROJECT_NOT_FOUND", err)
	}

	// Ask for confirmation unless force or a machine-readable mode
	if !force && !formatter.Quiet && !formatter.JSON {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Delete project #%d: '%s'? (y/N): ", projectID, project.Name)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := svc.DeleteProject(ctx, id); err != nil {
		return formatter.Fail("DELETE_ERROR", err)
	}

	// Output success
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"project_id": projectID})
	}

	formatter.Printf("✓ Project %d deleted successfully\n", projectID)
	return nil
}

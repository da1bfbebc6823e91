// Package project holds all cli commands related to projects
//
// e.g., projects project ...
package project

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addOutputFlags adds the agent-friendly output flags
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

func addRequiredIDFlag(cmd *cobra.Command) {
	cmd.Flags().Int("id", 0, "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
}

// service returns the project service of the CLI stored in the command context
func service(cmd *cobra.Command, formatter *cli.OutputFormatter) (projectservice.Service, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return nil, err
	}
	return cliInstance.App.ProjectService, nil
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
		// config commands run without a database or log file
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the configuration currently in effect (defaults, .env and
PROJECTS_* variables applied) to the config file so it can be edited.

Examples:
  projects config init
  projects config init --config ./projects.yaml --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Only print the config file path")
	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path(configPath)
	if err != nil {
		return formatter.Fail("CONFIG_PATH_ERROR", fmt.Errorf("failed to resolve config path: %w", err))
	}

	if _, err := os.Stat(path); err == nil && !force {
		if fmtErr := formatter.ErrorWithSuggestion("CONFIG_EXISTS",
			fmt.Sprintf("config file %s already exists", path),
			"pass --force to overwrite it"); fmtErr != nil {
			return fmtErr
		}
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: errors.New("config file already exists")}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return formatter.Fail("CONFIG_INVALID", err)
	}
	if err := cfg.Save(path); err != nil {
		return formatter.Fail("CONFIG_WRITE_ERROR", fmt.Errorf("failed to write config: %w", err))
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{"path": path})
	}
	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, path)
		return err
	}
	formatter.Printf("✓ Wrote config to %s\n", path)
	return nil
}

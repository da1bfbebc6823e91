package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/cli/menu"
	"github.com/thenoetrevino/projects/internal/cli/project"
	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/logging"
)

// session holds what PersistentPreRunE opens for a single invocation
type session struct {
	cli       *cli.CLI
	logCloser io.Closer
}

// close releases the database and the log file. It runs after every
// invocation, including failed ones.
func (s *session) close() error {
	var errs []error
	if s.cli != nil {
		if err := s.cli.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		s.cli = nil
	}
	if s.logCloser != nil {
		if err := s.logCloser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file: %w", err))
		}
		s.logCloser = nil
	}
	return errors.Join(errs...)
}

// newRootCmd builds the projects command tree
func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "projects",
		Short: "Projects - a console manager for DIY projects",
		Long: `Projects keeps track of DIY projects: their hours, difficulty and notes,
plus the materials, steps and categories that belong to each of them.

Run without a subcommand to start the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			s.logCloser, err = logging.Init(cfg.Logging)
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}

			s.cli, err = cli.NewCLI(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			cmd.SetContext(cli.WithCLI(cmd.Context(), s.cli))
			return nil
		},
		RunE: runMenu,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/projects/config.yaml)")

	rootCmd.AddCommand(menuCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(project.ProjectCmd())

	return rootCmd
}

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		RunE:  runMenu,
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	shell := menu.NewShell(cliInstance.App.ProjectService, cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithLogger(logging.Logger))
	return shell.Run(cmd.Context())
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	return execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	s := &session{}
	rootCmd := newRootCmd(s)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	code := cli.ExitSuccess
	if err != nil {
		var exitErr *cli.ExitCodeError
		if !errors.As(err, &exitErr) {
			// not yet reported by an output formatter
			slog.Error("command failed", "error", err)
			_, _ = fmt.Fprintf(stderr, "❌ Error: %v\n", err)
		}
		code = cli.ExitCodeFor(err)
	}

	if closeErr := s.close(); closeErr != nil {
		_, _ = fmt.Fprintf(stderr, "❌ Error: failed to clean up: %v\n", closeErr)
	}
	return code
}

// Package menu implements the interactive, line-oriented project shell
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/cli/styles"
	"github.com/thenoetrevino/projects/internal/models"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
	"github.com/thenoetrevino/projects/internal/types"
)

// Menu operations in display order
var operations = []string{
	"1- Add a project",
	"2- List projects",
	"3- Select a project",
	"4- Update project details",
	"5- Delete a project",
}

const (
	opAdd    = 1
	opList   = 2
	opSelect = 3
	opUpdate = 4
	opDelete = 5
)

// maxLineLength bounds a single line of shell input
const maxLineLength = 64 * 1024

// errReadInput marks failures reading the shell input. They end the loop.
var errReadInput = errors.New("failed to read input")

// Shell runs the menu loop against a project service
type Shell struct {
	svc     projectservice.Service
	input   io.Reader
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
	current *models.Project
}

// Option configures a Shell
type Option func(*Shell)

// WithLogger sets the logger used to record failed operations
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// NewShell creates a shell reading commands from in and writing to out
func NewShell(svc projectservice.Service, in io.Reader, out io.Writer, opts ...Option) *Shell {
	input := lineReader{r: in}
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	s := &Shell{
		svc:    svc,
		input:  input,
		in:     scanner,
		out:    out,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lineReader hands out one byte per Read so that neither the menu scanner
// nor a form reads past the end of the line it is answering.
type lineReader struct {
	r io.Reader
}

func (l lineReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return l.r.Read(p)
}

// Selected returns the currently selected project, or nil
func (s *Shell) Selected() *models.Project {
	return s.current
}

// Run shows the menu until the user enters a blank operation or input ends.
// Failed operations are reported and the loop continues; a failure reading
// the input itself is returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printOperations()
		op, ok, err := s.readInt("\nEnter an operation number (press Enter to Quit): ")
		if errors.Is(err, io.EOF) || (err == nil && !ok) {
			s.println("\nExiting the menu.")
			return nil
		}
		if errors.Is(err, errReadInput) {
			return err
		}
		if err != nil {
			s.reportError(err)
			continue
		}

		if err := s.dispatch(ctx, op); err != nil {
			if errors.Is(err, io.EOF) {
				s.println("\nExiting the menu.")
				return nil
			}
			if errors.Is(err, errReadInput) {
				return err
			}
			s.reportError(err)
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, op int) error {
	switch op {
	case opAdd:
		return s.createProject(ctx)
	case opList:
		return s.listProjects(ctx)
	case opSelect:
		return s.selectProject(ctx)
	case opUpdate:
		return s.updateProjectDetails(ctx)
	case opDelete:
		return s.deleteProject(ctx)
	default:
		s.printf("\n%d is not a valid option number. Try again.\n", op)
		return nil
	}
}

func (s *Shell) createProject(ctx context.Context) error {
	var fields projectFields
	if err := s.runForm(ctx, createProjectForm(&fields)); err != nil {
		return err
	}

	req, err := fields.createRequest()
	if err != nil {
		return err
	}
	project, err := s.svc.CreateProject(ctx, req)
	if err != nil {
		return err
	}

	s.printf("\nYou have successfully created project: %s\n", project)
	return nil
}

func (s *Shell) listProjects(ctx context.Context) error {
	projects, err := s.svc.GetAllProjects(ctx)
	if err != nil {
		return err
	}

	s.println("\nProjects:")
	for _, p := range projects {
		s.printf("   %d: %s\n", p.ID, p.Name)
	}
	return nil
}

func (s *Shell) selectProject(ctx context.Context) error {
	if err := s.listProjects(ctx); err != nil {
		return err
	}

	id, ok, err := s.readInt("Enter a project ID to select a project: ")
	if err != nil {
		return err
	}

	s.current = nil
	if !ok {
		s.println("\nInvalid project ID selected.")
		return nil
	}

	project, err := s.svc.GetProjectByID(ctx, types.ProjectIDFromInt(id))
	if err != nil {
		return err
	}
	s.current = project
	s.println(styles.RenderProject(project))
	return nil
}

func (s *Shell) updateProjectDetails(ctx context.Context) error {
	if s.current == nil {
		s.println("\nPlease select a project first.")
		return nil
	}
	cur := s.current

	var fields projectFields
	if err := s.runForm(ctx, updateProjectForm(&fields, cur)); err != nil {
		return err
	}

	req, err := fields.updateRequest(cur)
	if err != nil {
		return err
	}
	if _, err := s.svc.UpdateProject(ctx, req); err != nil {
		return err
	}

	refreshed, err := s.svc.GetProjectByID(ctx, cur.ID)
	if err != nil {
		s.current = nil
		return err
	}
	s.current = refreshed
	s.println("\nProject updated successfully!")
	return nil
}

func (s *Shell) deleteProject(ctx context.Context) error {
	if err := s.listProjects(ctx); err != nil {
		return err
	}

	id, ok, err := s.readInt("Enter a project ID to delete a project: ")
	if err != nil {
		return err
	}
	if !ok {
		s.println("\nInvalid project ID selected.")
		return nil
	}

	projectID := types.ProjectIDFromInt(id)
	if err := s.svc.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	s.printf("\nProject %d deleted successfully!\n", id)

	if s.current != nil && s.current.ID == projectID {
		s.current = nil
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════
// INPUT
// ═══════════════════════════════════════════════════════════════════

// runForm asks the questions of form line by line on the shell's input
func (s *Shell) runForm(ctx context.Context, form *huh.Form) error {
	err := form.
		WithAccessible(true).
		WithInput(s.input).
		WithOutput(s.out).
		RunWithContext(ctx)
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errReadInput, err)
	}
	return nil
}

// readString prints prompt and reads one line. ok is false for blank input.
func (s *Shell) readString(prompt string) (string, bool, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", false, fmt.Errorf("%w: %w", errReadInput, err)
		}
		return "", false, io.EOF
	}
	line := strings.TrimSpace(s.in.Text())
	return line, line != "", nil
}

func (s *Shell) readInt(prompt string) (int, bool, error) {
	line, ok, err := s.readString(prompt)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := cli.ParseInt(line)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// ═══════════════════════════════════════════════════════════════════
// OUTPUT
// ═══════════════════════════════════════════════════════════════════

func (s *Shell) printOperations() {
	s.println()
	s.println("Here's what you can do:")
	for _, op := range operations {
		s.println("   " + op)
	}

	if s.current == nil {
		s.println("\nYou are not working with a project.")
	} else {
		s.printf("\nYou have selected project: %s\n", s.current)
	}
}

func (s *Shell) reportError(err error) {
	s.logger.Warn("menu operation failed", "error", err)
	s.printf("\nError: %v. Try again!\n", err)
}

func (s *Shell) println(a ...interface{}) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

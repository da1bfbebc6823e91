package cli

import (
	"errors"

	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/models"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Project not found, or any case where a project ID doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A config file that cannot be parsed or holds unusable values.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong names, difficulty outside 1-5, negative hours,
	// unparsable numbers, or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// The error has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps service and store errors onto exit codes
func ExitCodeFor(err error) int {
	var exitErr *ExitCodeError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, projectservice.ErrProjectNotFound):
		return ExitNotFound
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitDataErr
	case errors.Is(err, projectservice.ErrEmptyName),
		errors.Is(err, projectservice.ErrNameTooLong),
		errors.Is(err, projectservice.ErrInvalidDifficulty),
		errors.Is(err, projectservice.ErrNegativeHours),
		errors.Is(err, projectservice.ErrInvalidProjectID),
		errors.Is(err, ErrInvalidNumber):
		return ExitValidation
	default:
		return ExitError
	}
}

func suggestionFor(err error) string {
	switch {
	case errors.Is(err, projectservice.ErrProjectNotFound):
		return "run 'projects project list' to see existing project IDs"
	case errors.Is(err, projectservice.ErrInvalidDifficulty):
		return "use a difficulty from 1 (easy) to 5 (hard)"
	case models.IsStoreError(err):
		return "check the database settings in your config file and the log file for details"
	default:
		return ""
	}
}

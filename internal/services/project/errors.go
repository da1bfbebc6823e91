package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName         = errors.New("project name cannot be empty")
	ErrNameTooLong       = errors.New("project name cannot exceed 100 characters")
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 5")
	ErrNegativeHours     = errors.New("hours cannot be negative")
	ErrInvalidProjectID  = errors.New("invalid project ID")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
)

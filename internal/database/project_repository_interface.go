package database

import (
	"context"

	"github.com/thenoetrevino/projects/internal/models"
	"github.com/thenoetrevino/projects/internal/types"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	FetchAllProjects(ctx context.Context) ([]*models.Project, error)
	FetchProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, bool, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	InsertProject(ctx context.Context, project *models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) (bool, error)
	DeleteProject(ctx context.Context, id types.ProjectID) (bool, error)
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}

package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/models"
	"github.com/thenoetrevino/projects/internal/types"
)

// Validation limits
const (
	MaxNameLength = 100
	MinDifficulty = 1
	MaxDifficulty = 5
	hoursScale    = 2
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id types.ProjectID) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name           string
	EstimatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	Difficulty     int
	Notes          string
}

// UpdateProjectRequest encapsulates data for updating a project.
// Nil fields keep their stored value.
type UpdateProjectRequest struct {
	ID             types.ProjectID
	Name           *string
	EstimatedHours *decimal.Decimal
	ActualHours    *decimal.Decimal
	Difficulty     *int
	Notes          *string
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	InsertProject(ctx context.Context, project *models.Project) (*models.Project, error)
	FetchAllProjects(ctx context.Context) ([]*models.Project, error)
	FetchProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, bool, error)
	UpdateProject(ctx context.Context, project *models.Project) (bool, error)
	DeleteProject(ctx context.Context, id types.ProjectID) (bool, error)
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new project service with private repository
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetAllProjects retrieves all projects ordered by name, without children
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.FetchAllProjects(ctx)
}

// GetProjectByID retrieves a project with its materials, steps and categories
func (s *service) GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error) {
	if !id.IsAssigned() {
		return nil, ErrInvalidProjectID
	}

	project, found, err := s.repo.FetchProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
	}
	return project, nil
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	project := models.NewProject()
	project.Name = strings.TrimSpace(req.Name)
	project.EstimatedHours = req.EstimatedHours.Round(hoursScale)
	project.ActualHours = req.ActualHours.Round(hoursScale)
	project.Difficulty = req.Difficulty
	project.Notes = strings.TrimSpace(req.Notes)

	if err := validateProject(project); err != nil {
		return nil, err
	}

	created, err := s.repo.InsertProject(ctx, project)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created", "project_id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateProject merges the request into the stored project and replaces all
// of its scalar attributes
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	if !req.ID.IsAssigned() {
		return nil, ErrInvalidProjectID
	}

	// Get existing project to fill in missing fields
	existing, err := s.GetProjectByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if req.EstimatedHours != nil {
		existing.EstimatedHours = req.EstimatedHours.Round(hoursScale)
	}
	if req.ActualHours != nil {
		existing.ActualHours = req.ActualHours.Round(hoursScale)
	}
	if req.Difficulty != nil {
		existing.Difficulty = *req.Difficulty
	}
	if req.Notes != nil {
		existing.Notes = strings.TrimSpace(*req.Notes)
	}

	if err := validateProject(existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateProject(ctx, existing)
	if err != nil {
		return nil, err
	}
	if !updated {
		// deleted between the read and the write
		return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, req.ID)
	}

	s.logger.Info("project updated", "project_id", existing.ID)
	return existing, nil
}

// DeleteProject deletes a project together with its materials, steps and
// category links
func (s *service) DeleteProject(ctx context.Context, id types.ProjectID) error {
	if !id.IsAssigned() {
		return ErrInvalidProjectID
	}

	deleted, err := s.repo.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %d", ErrProjectNotFound, id)
	}

	s.logger.Info("project deleted", "project_id", id)
	return nil
}

// validateProject validates the scalar attributes of a project about to be written
func validateProject(p *models.Project) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(p.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.Difficulty < MinDifficulty || p.Difficulty > MaxDifficulty {
		return ErrInvalidDifficulty
	}
	if p.EstimatedHours.IsNegative() || p.ActualHours.IsNegative() {
		return ErrNegativeHours
	}
	return nil
}

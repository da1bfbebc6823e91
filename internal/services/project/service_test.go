package project

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projects/internal/database"
	"github.com/thenoetrevino/projects/internal/models"
	"github.com/thenoetrevino/projects/internal/testutil"
	"github.com/thenoetrevino/projects/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewService(database.NewProjectRepo(db, database.SQLite), nil)
}

func validCreateRequest(name string) CreateProjectRequest {
	return CreateProjectRequest{
		Name:           name,
		EstimatedHours: decimal.RequireFromString("4.5"),
		ActualHours:    decimal.Zero,
		Difficulty:     2,
		Notes:          "cedar",
	}
}

func ptr[T any](v T) *T { return &v }

// stubRepo lets a test control what the repository reports
type stubRepo struct {
	project *models.Project
	found   bool
	updated bool
	deleted bool
	err     error
}

func (s *stubRepo) InsertProject(_ context.Context, p *models.Project) (*models.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	p.ID = 1
	return p, nil
}

func (s *stubRepo) FetchAllProjects(context.Context) ([]*models.Project, error) {
	return nil, s.err
}

func (s *stubRepo) FetchProjectByID(context.Context, types.ProjectID) (*models.Project, bool, error) {
	return s.project, s.found, s.err
}

func (s *stubRepo) UpdateProject(context.Context, *models.Project) (bool, error) {
	return s.updated, s.err
}

func (s *stubRepo) DeleteProject(context.Context, types.ProjectID) (bool, error) {
	return s.deleted, s.err
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateProject(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	req := validCreateRequest("  Birdhouse  ")
	req.EstimatedHours = decimal.RequireFromString("4.555")

	created, err := svc.CreateProject(ctx, req)
	require.NoError(t, err)
	require.True(t, created.ID.IsAssigned())
	assert.Equal(t, "Birdhouse", created.Name, "name should be trimmed")
	assert.Equal(t, "4.56", created.EstimatedHours.StringFixed(2))

	got, err := svc.GetProjectByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Birdhouse", got.Name)
	assert.Equal(t, "cedar", got.Notes)
}

func TestCreateProjectValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*CreateProjectRequest)
		wantErr error
	}{
		{"empty name", func(r *CreateProjectRequest) { r.Name = "" }, ErrEmptyName},
		{"whitespace name", func(r *CreateProjectRequest) { r.Name = "   " }, ErrEmptyName},
		{"name too long", func(r *CreateProjectRequest) { r.Name = strings.Repeat("x", 101) }, ErrNameTooLong},
		{"difficulty zero", func(r *CreateProjectRequest) { r.Difficulty = 0 }, ErrInvalidDifficulty},
		{"difficulty six", func(r *CreateProjectRequest) { r.Difficulty = 6 }, ErrInvalidDifficulty},
		{"negative estimate", func(r *CreateProjectRequest) { r.EstimatedHours = decimal.NewFromInt(-1) }, ErrNegativeHours},
		{"negative actual", func(r *CreateProjectRequest) { r.ActualHours = decimal.RequireFromString("-0.5") }, ErrNegativeHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := setupService(t)

			req := validCreateRequest("Birdhouse")
			tt.mutate(&req)

			_, err := svc.CreateProject(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)

			projects, err := svc.GetAllProjects(context.Background())
			require.NoError(t, err)
			assert.Empty(t, projects, "invalid project must not be stored")
		})
	}
}

func TestCreateProjectNameAtLimit(t *testing.T) {
	t.Parallel()
	svc := setupService(t)

	_, err := svc.CreateProject(context.Background(), validCreateRequest(strings.Repeat("é", 100)))
	assert.NoError(t, err)
}

func TestGetProjectByIDNotFound(t *testing.T) {
	t.Parallel()
	svc := setupService(t)

	_, err := svc.GetProjectByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = svc.GetProjectByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidProjectID)
}

func TestGetAllProjects(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"Zeta", "Alpha"} {
		_, err := svc.CreateProject(ctx, validCreateRequest(name))
		require.NoError(t, err)
	}

	projects, err := svc.GetAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Alpha", projects[0].Name)
	assert.Equal(t, "Zeta", projects[1].Name)
}

func TestUpdateProjectMergesProvidedFields(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, validCreateRequest("Birdhouse"))
	require.NoError(t, err)

	updated, err := svc.UpdateProject(ctx, UpdateProjectRequest{
		ID:          created.ID,
		ActualHours: ptr(decimal.RequireFromString("5.25")),
		Difficulty:  ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Birdhouse", updated.Name)
	assert.Equal(t, "5.25", updated.ActualHours.StringFixed(2))

	got, err := svc.GetProjectByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Birdhouse", got.Name, "unset fields keep their value")
	assert.Equal(t, "4.50", got.EstimatedHours.StringFixed(2))
	assert.Equal(t, "5.25", got.ActualHours.StringFixed(2))
	assert.Equal(t, 3, got.Difficulty)
	assert.Equal(t, "cedar", got.Notes)
}

func TestUpdateProjectValidation(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, validCreateRequest("Birdhouse"))
	require.NoError(t, err)

	_, err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: created.ID, Name: ptr(" ")})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: created.ID, Difficulty: ptr(9)})
	assert.ErrorIs(t, err, ErrInvalidDifficulty)

	got, err := svc.GetProjectByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Birdhouse", got.Name)
	assert.Equal(t, 2, got.Difficulty)
}

func TestUpdateProjectNotFound(t *testing.T) {
	t.Parallel()
	svc := setupService(t)

	_, err := svc.UpdateProject(context.Background(), UpdateProjectRequest{ID: 99, Name: ptr("Ghost")})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestUpdateProjectRepositoryReportsNothingUpdated(t *testing.T) {
	t.Parallel()
	stored := models.NewProject()
	stored.ID = 5
	stored.Name = "Birdhouse"
	stored.Difficulty = 2

	svc := NewService(&stubRepo{project: stored, found: true, updated: false}, nil)

	_, err := svc.UpdateProject(context.Background(), UpdateProjectRequest{ID: 5, Name: ptr("Feeder")})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, validCreateRequest("Birdhouse"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(ctx, created.ID))

	_, err = svc.GetProjectByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	err = svc.DeleteProject(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	assert.ErrorIs(t, svc.DeleteProject(ctx, -1), ErrInvalidProjectID)
}

func TestStoreFailurePassesThrough(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk I/O error")
	storeErr := &models.StoreError{Op: "delete project 1", Err: cause}

	svc := NewService(&stubRepo{err: storeErr}, nil)

	err := svc.DeleteProject(context.Background(), 1)
	assert.True(t, models.IsStoreError(err))
	assert.ErrorIs(t, err, cause)
}

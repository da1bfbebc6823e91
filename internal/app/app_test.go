package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projects/internal/config"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

func memoryConfig() config.DatabaseConfig {
	return config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}
}

func TestOpen(t *testing.T) {
	app, err := Open(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	if app.ProjectService == nil {
		t.Fatal("Expected ProjectService to be initialized")
	}
	if app.Repo() == nil {
		t.Fatal("Expected repository to be initialized")
	}

	created, err := app.ProjectService.CreateProject(context.Background(), projectservice.CreateProjectRequest{
		Name:       "Birdhouse",
		Difficulty: 2,
	})
	require.NoError(t, err)

	projects, err := app.Repo().FetchAllProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, created.ID, projects[0].ID)
}

func TestOpenInvalidDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	app, err := Open(context.Background(), memoryConfig())
	require.NoError(t, err)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}

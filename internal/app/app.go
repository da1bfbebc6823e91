package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/database"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	ProjectService projectservice.Service
}

// New creates a new App over an open database.
// This is the single entry point for creating the application container.
func New(db *sql.DB, dialect database.Dialect, opts ...Option) *App {
	cfg := newAppConfig(opts)

	repo := database.NewProjectRepo(db, dialect, database.WithLogger(cfg.logger))

	return &App{
		db:             db,
		repo:           repo,
		ProjectService: projectservice.NewService(repo, cfg.logger),
	}
}

// Open connects to the configured database and builds the App on top of it
func Open(ctx context.Context, cfg config.DatabaseConfig, opts ...Option) (*App, error) {
	db, dialect, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return New(db, dialect, opts...), nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

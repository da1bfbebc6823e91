package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/models"
	"github.com/thenoetrevino/projects/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory sqlite database with the full schema.
// Open limits the pool to one connection, so every repository call sees the
// same in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := Open(context.Background(), config.DatabaseConfig{
		Driver: DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestRepo returns a sqlite-backed repository plus its database handle
func setupTestRepo(t *testing.T) (*ProjectRepo, *sql.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewProjectRepo(db, SQLite), db
}

// ============================================================================
// SEED HELPERS
// ============================================================================

// createTestProject inserts a project through the repository
func createTestProject(t *testing.T, repo *ProjectRepo, name string) *models.Project {
	t.Helper()
	p := models.NewProject()
	p.Name = name
	p.Difficulty = 3
	inserted, err := repo.InsertProject(context.Background(), p)
	if err != nil {
		t.Fatalf("Failed to create project %q: %v", name, err)
	}
	return inserted
}

func seedMaterial(t *testing.T, db *sql.DB, projectID types.ProjectID, name string, numRequired int, cost string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, ?, ?)",
		int64(projectID), name, numRequired, cost,
	)
	if err != nil {
		t.Fatalf("Failed to seed material %q: %v", name, err)
	}
}

func seedStep(t *testing.T, db *sql.DB, projectID types.ProjectID, text string, order int) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)",
		int64(projectID), text, order,
	)
	if err != nil {
		t.Fatalf("Failed to seed step %q: %v", text, err)
	}
}

func seedCategory(t *testing.T, db *sql.DB, name string) types.CategoryID {
	t.Helper()
	result, err := db.Exec("INSERT INTO category (category_name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to seed category %q: %v", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read category id: %v", err)
	}
	return types.CategoryID(id)
}

func linkCategory(t *testing.T, db *sql.DB, projectID types.ProjectID, categoryID types.CategoryID) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO project_category (project_id, category_id) VALUES (?, ?)",
		int64(projectID), int64(categoryID),
	)
	if err != nil {
		t.Fatalf("Failed to link category %d to project %d: %v", categoryID, projectID, err)
	}
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

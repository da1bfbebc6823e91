package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/database"
)

// SetupTestDB creates an in-memory sqlite database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := database.Open(context.Background(), config.DatabaseConfig{
		Driver: database.DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestProject inserts a project row and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO project (project_name, estimated_hours, actual_hours, difficulty, notes) VALUES (?, ?, ?, ?, ?)",
		name, "1.00", "0.00", 2, "Test notes")
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	projectID, _ := result.LastInsertId()
	return int(projectID)
}

// CreateTestMaterial adds a material to a project
func CreateTestMaterial(t *testing.T, db *sql.DB, projectID int, name string, numRequired int, cost string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, ?, ?)",
		projectID, name, numRequired, cost)
	if err != nil {
		t.Fatalf("Failed to create test material: %v", err)
	}
	materialID, _ := result.LastInsertId()
	return int(materialID)
}

// CreateTestStep adds a step to a project at the given order
func CreateTestStep(t *testing.T, db *sql.DB, projectID int, text string, order int) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)",
		projectID, text, order)
	if err != nil {
		t.Fatalf("Failed to create test step: %v", err)
	}
	stepID, _ := result.LastInsertId()
	return int(stepID)
}

// CreateTestCategory creates a category, links it to the project and
// returns the category ID
func CreateTestCategory(t *testing.T, db *sql.DB, projectID int, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO category (category_name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	categoryID, _ := result.LastInsertId()

	_, err = db.ExecContext(context.Background(),
		"INSERT INTO project_category (project_id, category_id) VALUES (?, ?)", projectID, categoryID)
	if err != nil {
		t.Fatalf("Failed to link test category: %v", err)
	}
	return int(categoryID)
}

package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/projects/internal/app"
	"github.com/thenoetrevino/projects/internal/database"
	"github.com/thenoetrevino/projects/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db, database.SQLite)
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	return testutil.CreateTestProject(t, db, name)
}

// CreateTestStep wraps testutil.CreateTestStep for CLI tests
func CreateTestStep(t *testing.T, db *sql.DB, projectID int, text string, order int) int {
	t.Helper()
	return testutil.CreateTestStep(t, db, projectID, text, order)
}

// CreateTestMaterial wraps testutil.CreateTestMaterial for CLI tests
func CreateTestMaterial(t *testing.T, db *sql.DB, projectID int, name string, numRequired int, cost string) int {
	t.Helper()
	return testutil.CreateTestMaterial(t, db, projectID, name, numRequired, cost)
}

// CreateTestCategory wraps testutil.CreateTestCategory for CLI tests
func CreateTestCategory(t *testing.T, db *sql.DB, projectID int, name string) int {
	t.Helper()
	return testutil.CreateTestCategory(t, db, projectID, name)
}

package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// runMigrations creates the project, material, step, category and
// project_category tables if they do not exist yet
func runMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	schema, err := schemaFS.ReadFile("schema/" + dialect.String() + ".sql")
	if err != nil {
		return fmt.Errorf("failed to read %s schema: %w", dialect, err)
	}

	for _, stmt := range splitStatements(string(schema)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// splitStatements splits a schema file on ';'. The schema files contain no
// semicolons inside statements.
func splitStatements(schema string) []string {
	parts := strings.Split(schema, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

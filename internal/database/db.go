// Package database handles the connection to the relational store and the
// project aggregate repository
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/projects/internal/config"
)

// sqlite pragmas applied to every new connection
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Open connects to the configured database, verifies the connection and
// creates the schema if needed.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect, err := DialectForDriver(cfg.Driver)
	if err != nil {
		return nil, 0, err
	}

	dsn := cfg.DSN
	if dialect == SQLite {
		dsn, err = sqliteDSN(cfg.DSN)
		if err != nil {
			return nil, 0, err
		}
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == SQLite {
		// SQLite benefits from a single writer connection, and an in-memory
		// database only exists on the connection that created it
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, 0, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db, dialect); err != nil {
		closeDB(db)
		return nil, 0, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, dialect, nil
}

// sqliteDSN creates the parent directory of a file database and appends the
// connection pragmas
func sqliteDSN(path string) (string, error) {
	inMemory := path == ":memory:" || strings.Contains(path, "mode=memory")
	if !inMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	pragmas := sqlitePragmas
	if !inMemory {
		pragmas += "&_pragma=journal_mode(WAL)"
	}

	if strings.Contains(path, "?") {
		return path + "&" + pragmas, nil
	}
	return path + "?" + pragmas, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

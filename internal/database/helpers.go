package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/projects/internal/models"
)

// withTx runs fn inside a transaction on a connection scoped to this call.
// It handles acquire, begin, rollback on error or panic, commit on success and
// release on every path. Every failure comes back as a *models.StoreError.
func withTx(ctx context.Context, conns ConnProvider, txc TxController, logger *slog.Logger, op string, fn func(*sql.Tx) error) error {
	conn, err := conns.Conn(ctx)
	if err != nil {
		return storeError(op, fmt.Errorf("failed to acquire connection: %w", err))
	}
	defer releaseConn(logger, conn)

	tx, err := txc.Begin(ctx, conn)
	if err != nil {
		return storeError(op, fmt.Errorf("failed to begin transaction: %w", err))
	}

	done := false
	defer func() {
		if !done {
			// only reached when fn panicked
			_ = txc.Rollback(tx, errors.New("panic during transaction"))
		}
	}()

	if err := fn(tx); err != nil {
		done = true
		return storeError(op, txc.Rollback(tx, err))
	}

	if err := txc.Commit(tx); err != nil {
		done = true
		return storeError(op, txc.Rollback(tx, fmt.Errorf("failed to commit transaction: %w", err)))
	}
	done = true
	return nil
}

// withConn runs fn on a connection scoped to this call, without a transaction
func withConn(ctx context.Context, conns ConnProvider, logger *slog.Logger, op string, fn func(*sql.Conn) error) error {
	conn, err := conns.Conn(ctx)
	if err != nil {
		return storeError(op, fmt.Errorf("failed to acquire connection: %w", err))
	}
	defer releaseConn(logger, conn)

	if err := fn(conn); err != nil {
		return storeError(op, err)
	}
	return nil
}

func releaseConn(logger *slog.Logger, conn *sql.Conn) {
	if err := conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		logger.Error("failed to release connection", "error", err)
	}
}

func closeRows(logger *slog.Logger, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("failed to close rows", "error", err)
	}
}

func storeError(op string, err error) error {
	return &models.StoreError{Op: op, Err: err}
}

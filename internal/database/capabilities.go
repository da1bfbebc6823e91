package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// ConnProvider hands out one connection per repository call.
// *sql.DB satisfies it.
type ConnProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

// TxController owns the transaction boundaries of a repository call
type TxController interface {
	Begin(ctx context.Context, conn *sql.Conn) (*sql.Tx, error)
	Commit(tx *sql.Tx) error
	// Rollback aborts tx and returns cause, joined with the rollback
	// failure if the rollback itself failed.
	Rollback(tx *sql.Tx, cause error) error
}

type sqlTxController struct {
	logger *slog.Logger
}

// NewTxController returns a TxController backed by database/sql transactions
func NewTxController(logger *slog.Logger) TxController {
	if logger == nil {
		logger = slog.Default()
	}
	return sqlTxController{logger: logger}
}

func (c sqlTxController) Begin(ctx context.Context, conn *sql.Conn) (*sql.Tx, error) {
	return conn.BeginTx(ctx, nil)
}

func (c sqlTxController) Commit(tx *sql.Tx) error {
	return tx.Commit()
}

func (c sqlTxController) Rollback(tx *sql.Tx, cause error) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		c.logger.Error("failed to rollback transaction", "error", err, "cause", cause)
		return errors.Join(cause, fmt.Errorf("failed to rollback transaction: %w", err))
	}
	return cause
}

// RowScanner is implemented by *sql.Row and *sql.Rows
type RowScanner interface {
	Scan(dest ...any) error
}

package db

import (
	"context"
	"database/sql"
)

// Queryer is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// reads and ledger increments can run standalone or inside the handling
// transaction.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

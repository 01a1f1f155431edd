// Package keyvalue provides the durable key-value capability backing the
// credential store. Two implementations exist: an SQLite-backed one for
// real runs and an in-memory one for tests and throwaway sessions; the
// composition root picks one.
package keyvalue

import (
	"context"
	"database/sql"
)

// Repository is a single-slot-per-key durable store. Get returns (nil, nil)
// when the key is absent; Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// DBTX is the subset of database/sql used by the SQLite repository.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

package database

import (
	"context"

	"db-wipe/internal/schema"
)

// Conn is everything the wipe commands need from a database: a table
// listing and a way to run one statement. Tests substitute a stub.
type Conn interface {
	// ListTables returns the base tables of the session schema, in the
	// order the database lists them.
	ListTables(ctx context.Context) ([]schema.Table, error)

	// Exec runs a single statement. Each call commits on its own.
	Exec(ctx context.Context, stmt string) error
}

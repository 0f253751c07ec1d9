package database

import (
	"context"
	"database/sql"

	"db-wipe/internal/dialect"
	"db-wipe/internal/errs"
	"db-wipe/internal/schema"

	"github.com/jmoiron/sqlx"
)

// SQLConn is a Conn over one pinned database/sql connection. Session
// settings such as foreign_key_checks therefore hold for every statement.
type SQLConn struct {
	db      *sqlx.DB
	conn    *sqlx.Conn
	dialect dialect.Dialect
	schema  string
}

// Open connects with cfg, pins a single connection and resolves the
// session schema through the dialect.
func Open(ctx context.Context, cfg *Config, d dialect.Dialect) (*SQLConn, error) {
	if cfg.DSN == "" {
		return nil, errs.New(errs.ErrKindInvalidArguments, "database.dsn is required (via flag, env or config)")
	}

	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	db, err := sqlx.ConnectContext(connectCtx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, mapError(err, errs.ErrKindConnectionFailed, "failed to connect to db")
	}
	db.SetMaxOpenConns(1)

	conn, err := db.Connx(connectCtx)
	if err != nil {
		_ = db.Close()
		return nil, mapError(err, errs.ErrKindConnectionFailed, "failed to acquire connection")
	}

	c := &SQLConn{db: db, conn: conn, dialect: d}
	if c.schema, err = c.currentSchema(connectCtx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// Schema is the schema whose tables ListTables returns.
func (c *SQLConn) Schema() string {
	return c.schema
}

// Close releases the pinned connection and the pool.
func (c *SQLConn) Close() error {
	_ = c.conn.Close()
	return c.db.Close()
}

func (c *SQLConn) ListTables(ctx context.Context) ([]schema.Table, error) {
	var names []string
	if err := c.conn.SelectContext(ctx, &names, c.dialect.ListTablesQuery(), c.schema); err != nil {
		return nil, mapError(err, errs.ErrKindQueryFailed, "failed to list tables")
	}

	tables := make([]schema.Table, len(names))
	for i, n := range names {
		tables[i] = schema.Table{Name: n}
	}
	return tables, nil
}

func (c *SQLConn) Exec(ctx context.Context, stmt string) error {
	if _, err := c.conn.ExecContext(ctx, stmt); err != nil {
		return mapError(err, errs.ErrKindStatementFailed, "statement failed")
	}
	return nil
}

func (c *SQLConn) currentSchema(ctx context.Context) (string, error) {
	var name sql.NullString
	if err := c.conn.GetContext(ctx, &name, c.dialect.CurrentSchemaQuery()); err != nil {
		return "", mapError(err, errs.ErrKindQueryFailed, "failed to get current schema")
	}
	if !name.Valid || name.String == "" {
		return "", errs.New(errs.ErrKindInvalidArguments, "no database/schema selected in DSN")
	}
	return name.String, nil
}

var _ Conn = (*SQLConn)(nil)

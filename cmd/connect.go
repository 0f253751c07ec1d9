package cmd

import (
	"context"

	"db-wipe/internal/database"
	"db-wipe/internal/dialect"
	"db-wipe/internal/schema"
)

// wipeConn is a database.Conn the command owns and must close.
type wipeConn interface {
	database.Conn
	Schema() string
	Close() error
}

// connector opens the connection for a command. Tests swap it for a stub.
var connector = func(ctx context.Context, cfg *database.Config, d dialect.Dialect) (wipeConn, error) {
	return database.Open(ctx, cfg, d)
}

// resolve reads the configuration and picks the dialect. It never touches
// the database.
func resolve() (*DBConfig, dialect.Dialect, error) {
	config, err := ResolveDBConfig()
	if err != nil {
		return nil, nil, err
	}

	d, err := dialect.GetDialect(config.Driver)
	if err != nil {
		return nil, nil, err
	}
	Log.WithField("dialect", d.Name()).Debug("Using dialect")
	return config, d, nil
}

func open(ctx context.Context, config *DBConfig, d dialect.Dialect) (wipeConn, error) {
	conn, err := connector(ctx, connectionConfig(config), d)
	if err != nil {
		return nil, err
	}
	Log.WithField("name", config.Name).
		WithField("driver", config.Driver).
		WithField("schema", conn.Schema()).
		Info("Connected")
	return conn, nil
}

// connect resolves the configuration and dialect, then opens the connection.
func connect(ctx context.Context) (wipeConn, dialect.Dialect, error) {
	config, d, err := resolve()
	if err != nil {
		return nil, nil, err
	}
	conn, err := open(ctx, config, d)
	if err != nil {
		return nil, nil, err
	}
	return conn, d, nil
}

// lazyConn opens the connection on first use, so a command that fails
// validation never connects.
type lazyConn struct {
	config  *DBConfig
	dialect dialect.Dialect
	conn    wipeConn
}

func (c *lazyConn) get(ctx context.Context) (wipeConn, error) {
	if c.conn == nil {
		conn, err := open(ctx, c.config, c.dialect)
		if err != nil {
			return nil, err
		}
		c.conn = conn
	}
	return c.conn, nil
}

func (c *lazyConn) ListTables(ctx context.Context) ([]schema.Table, error) {
	conn, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	return conn.ListTables(ctx)
}

func (c *lazyConn) Exec(ctx context.Context, stmt string) error {
	conn, err := c.get(ctx)
	if err != nil {
		return err
	}
	return conn.Exec(ctx, stmt)
}

func (c *lazyConn) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

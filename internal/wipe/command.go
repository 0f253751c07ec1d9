// Package wipe truncates or drops the tables of a database, one table by
// name or all of them, optionally as a dry run that only prints the plan.
package wipe

import (
	"context"
	"io"

	"db-wipe/internal/database"
	"db-wipe/internal/dialect"
	"db-wipe/internal/errs"
	"db-wipe/internal/report"
	"db-wipe/internal/schema"

	"github.com/sirupsen/logrus"
)

// Command drives a wipe: validate the selection, resolve the tables, build
// the plan, then print and (unless dry run) execute every statement.
type Command struct {
	conn        database.Conn
	dialect     dialect.Dialect
	printer     *report.Printer
	log         logrus.FieldLogger
	exclude     []string
	onPlanned   func(Plan)
	onStatement func()
}

type Option func(*Command)

// WithExclude protects additional tables from Truncate. Drop ignores it.
func WithExclude(tables ...string) Option {
	return func(c *Command) { c.exclude = append(c.exclude, tables...) }
}

// WithProgress registers a callback invoked after every statement.
func WithProgress(fn func()) Option {
	return func(c *Command) { c.onStatement = fn }
}

// WithPlanned registers a callback invoked by Run once the plan is built
// and before the first statement is printed.
func WithPlanned(fn func(Plan)) Option {
	return func(c *Command) { c.onPlanned = fn }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Command) { c.log = l }
}

func New(conn database.Conn, d dialect.Dialect, p *report.Printer, opts ...Option) *Command {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	c := &Command{conn: conn, dialect: d, printer: p, log: silent}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Truncate empties the selected tables, skipping the migration-status table.
func (c *Command) Truncate(ctx context.Context, sel schema.Selector, dryRun bool) ([]Result, error) {
	return c.Run(ctx, Truncate, sel, dryRun)
}

// Drop removes the selected tables. Unlike Truncate it excludes nothing.
func (c *Command) Drop(ctx context.Context, sel schema.Selector, dryRun bool) ([]Result, error) {
	return c.Run(ctx, Drop, sel, dryRun)
}

// Run prints the dry-run banner, plans, then executes. Statement failures
// are reported in the results; only validation and table listing errors
// are returned.
func (c *Command) Run(ctx context.Context, mode Mode, sel schema.Selector, dryRun bool) ([]Result, error) {
	if dryRun {
		c.printer.DryRunBanner()
	}
	plan, err := c.Plan(ctx, mode, sel)
	if err != nil {
		return nil, err
	}
	if c.onPlanned != nil {
		c.onPlanned(plan)
	}
	return c.Execute(ctx, plan, dryRun), nil
}

// Plan validates sel before touching the database, resolves the tables
// and builds the statement plan for mode.
func (c *Command) Plan(ctx context.Context, mode Mode, sel schema.Selector) (Plan, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	tables, err := c.Resolve(ctx, sel)
	if err != nil {
		return nil, err
	}
	if mode == Truncate {
		tables = schema.Exclude(tables, append([]string{MigrationStatusTable}, c.exclude...)...)
	}
	if sel.Table != "" && len(tables) == 0 {
		c.log.WithField("table", sel.Table).Debug("no matching table, only constraint toggles will run")
	}

	plan := BuildPlan(c.dialect, mode, tables)
	c.log.WithFields(logrus.Fields{
		"mode":       mode.String(),
		"tables":     len(tables),
		"statements": len(plan),
	}).Debug("plan built")
	return plan, nil
}

// Resolve lists the tables of the schema and keeps those sel matches.
// A name that matches nothing yields an empty set, not an error.
func (c *Command) Resolve(ctx context.Context, sel schema.Selector) ([]schema.Table, error) {
	all, err := c.conn.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	return schema.Select(all, sel), nil
}

// Execute prints each statement and, unless dryRun, runs it. A failing
// statement is reported and the next one still runs.
func (c *Command) Execute(ctx context.Context, plan Plan, dryRun bool) []Result {
	results := make([]Result, 0, len(plan))
	for _, stmt := range plan {
		c.printer.Query(stmt)
		res := Result{Statement: stmt}
		if !dryRun {
			res.Executed = true
			if err := c.conn.Exec(ctx, stmt); err != nil {
				res.Err = err
				c.printer.Error(errs.Message(err))
				c.log.WithError(err).WithField("statement", stmt).Debug("statement failed, continuing")
			}
		}
		results = append(results, res)
		if c.onStatement != nil {
			c.onStatement()
		}
	}
	return results
}

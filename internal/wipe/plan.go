package wipe

import (
	"db-wipe/internal/dialect"
	"db-wipe/internal/schema"
)

// MigrationStatusTable records which schema migrations have been applied.
// Truncate never touches it.
const MigrationStatusTable = "flow_doctrine_migrationstatus"

// Mode selects the per-table statement of a plan.
type Mode int

const (
	Truncate Mode = iota
	Drop
)

func (m Mode) String() string {
	switch m {
	case Truncate:
		return "truncate"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

func (m Mode) statement(d dialect.Dialect, table string) string {
	if m == Drop {
		return d.DropTableSQL(table)
	}
	return d.TruncateTableSQL(table)
}

// Plan is the ordered list of statements a command runs.
type Plan []string

// BuildPlan wraps one statement per table between the foreign-key
// disable and enable statements.
func BuildPlan(d dialect.Dialect, mode Mode, tables []schema.Table) Plan {
	plan := make(Plan, 0, len(tables)+2)
	plan = append(plan, d.DisableForeignKeyChecks())
	for _, t := range tables {
		plan = append(plan, mode.statement(d, t.Name))
	}
	return append(plan, d.EnableForeignKeyChecks())
}

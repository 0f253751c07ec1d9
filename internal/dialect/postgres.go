package dialect

import (
	"fmt"
	"regexp"
)

// Unquoted identifiers fold to lower case, so anything else must be quoted.
var postgresPlainIdent = regexp.MustCompile(`^[a-z_][a-z0-9_$]*$`)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) ListTablesQuery() string {
	return `SELECT table_name FROM information_schema.tables WHERE table_schema = $1 AND table_type = 'BASE TABLE' ORDER BY table_name`
}

func (d *PostgresDialect) CurrentSchemaQuery() string {
	return `SELECT current_schema()`
}

// session_replication_role needs superuser; TRUNCATE ... CASCADE covers
// the referencing tables when it is not granted.
func (d *PostgresDialect) DisableForeignKeyChecks() string {
	return "SET session_replication_role = 'replica'"
}

func (d *PostgresDialect) EnableForeignKeyChecks() string {
	return "SET session_replication_role = 'origin'"
}

func (d *PostgresDialect) TruncateTableSQL(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s CASCADE", d.QuoteIdentifier(table))
}

func (d *PostgresDialect) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE %s CASCADE", d.QuoteIdentifier(table))
}

func (d *PostgresDialect) QuoteIdentifier(name string) string {
	return quoteIfNeeded(name, postgresPlainIdent, postgresKeywords, `"`, `"`)
}

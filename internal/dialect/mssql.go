package dialect

import (
	"fmt"
	"regexp"
	"strings"
)

var mssqlPlainIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_@$#]*$`)

// The constraint toggles build one ALTER TABLE per table and run them as a
// single batch, so no "?" placeholder reaches the driver's parameter parser.
const (
	mssqlNocheckAll = `DECLARE @sql NVARCHAR(MAX) = N''; ` +
		`SELECT @sql += N'ALTER TABLE ' + QUOTENAME(s.name) + N'.' + QUOTENAME(t.name) + N' NOCHECK CONSTRAINT ALL; ' ` +
		`FROM sys.tables t JOIN sys.schemas s ON t.schema_id = s.schema_id; ` +
		`EXEC sp_executesql @sql`
	mssqlCheckAll = `DECLARE @sql NVARCHAR(MAX) = N''; ` +
		`SELECT @sql += N'ALTER TABLE ' + QUOTENAME(s.name) + N'.' + QUOTENAME(t.name) + N' WITH CHECK CHECK CONSTRAINT ALL; ' ` +
		`FROM sys.tables t JOIN sys.schemas s ON t.schema_id = s.schema_id; ` +
		`EXEC sp_executesql @sql`
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string { return "sqlserver" }

func (d *MSSQLDialect) ListTablesQuery() string {
	return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MSSQLDialect) CurrentSchemaQuery() string {
	return `SELECT SCHEMA_NAME()`
}

func (d *MSSQLDialect) DisableForeignKeyChecks() string {
	return mssqlNocheckAll
}

func (d *MSSQLDialect) EnableForeignKeyChecks() string {
	return mssqlCheckAll
}

// TRUNCATE is refused on any table referenced by a foreign key, even with
// the constraint disabled. The DELETE is followed by an identity reseed in
// the same batch so the table restarts numbering like a real truncate.
func (d *MSSQLDialect) TruncateTableSQL(table string) string {
	quoted := d.QuoteIdentifier(table)
	literal := strings.ReplaceAll(quoted, "'", "''")
	return fmt.Sprintf(
		"DELETE FROM %s; IF OBJECTPROPERTY(OBJECT_ID(N'%s'), 'TableHasIdentity') = 1 DBCC CHECKIDENT (N'%s', RESEED, 0)",
		quoted, literal, literal,
	)
}

func (d *MSSQLDialect) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE %s", d.QuoteIdentifier(table))
}

func (d *MSSQLDialect) QuoteIdentifier(name string) string {
	return quoteIfNeeded(name, mssqlPlainIdent, mssqlKeywords, "[", "]")
}

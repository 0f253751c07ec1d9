package dialect

import (
	"fmt"
	"regexp"
)

var mysqlPlainIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string { return "mysql" }

func (d *MysqlDialect) ListTablesQuery() string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MysqlDialect) CurrentSchemaQuery() string {
	return `SELECT DATABASE()`
}

func (d *MysqlDialect) DisableForeignKeyChecks() string {
	return "SET foreign_key_checks = 0"
}

func (d *MysqlDialect) EnableForeignKeyChecks() string {
	return "SET foreign_key_checks = 1"
}

func (d *MysqlDialect) TruncateTableSQL(table string) string {
	return fmt.Sprintf("TRUNCATE %s", d.QuoteIdentifier(table))
}

func (d *MysqlDialect) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE %s", d.QuoteIdentifier(table))
}

func (d *MysqlDialect) QuoteIdentifier(name string) string {
	return quoteIfNeeded(name, mysqlPlainIdent, mysqlKeywords, "`", "`")
}

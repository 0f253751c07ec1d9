package dialect

import (
	"fmt"
	"regexp"
)

// Unquoted identifiers fold to upper case.
var oraclePlainIdent = regexp.MustCompile(`^[A-Z][A-Z0-9_$#]*$`)

const oracleToggleConstraints = `BEGIN ` +
	`FOR c IN (SELECT table_name, constraint_name FROM user_constraints WHERE constraint_type = 'R') LOOP ` +
	`EXECUTE IMMEDIATE 'ALTER TABLE "' || c.table_name || '" %s CONSTRAINT "' || c.constraint_name || '"'; ` +
	`END LOOP; ` +
	`END;`

type OracleDialect struct{}

func (d *OracleDialect) Name() string { return "oracle" }

func (d *OracleDialect) ListTablesQuery() string {
	return `SELECT TABLE_NAME FROM ALL_TABLES WHERE OWNER = :1 ORDER BY TABLE_NAME`
}

func (d *OracleDialect) CurrentSchemaQuery() string {
	return `SELECT SYS_CONTEXT('USERENV', 'CURRENT_SCHEMA') FROM DUAL`
}

func (d *OracleDialect) DisableForeignKeyChecks() string {
	return fmt.Sprintf(oracleToggleConstraints, "DISABLE")
}

func (d *OracleDialect) EnableForeignKeyChecks() string {
	return fmt.Sprintf(oracleToggleConstraints, "ENABLE")
}

func (d *OracleDialect) TruncateTableSQL(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdentifier(table))
}

func (d *OracleDialect) DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS", d.QuoteIdentifier(table))
}

func (d *OracleDialect) QuoteIdentifier(name string) string {
	return quoteIfNeeded(name, oraclePlainIdent, oracleKeywords, `"`, `"`)
}

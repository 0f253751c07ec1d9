package dialect_test

import (
	"strings"
	"testing"

	"db-wipe/internal/dialect"
	"db-wipe/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDialect(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"mysql", "mysql"},
		{"postgres", "postgres"},
		{"pgx", "postgres"},
		{"sqlserver", "sqlserver"},
		{"MSSQL", "sqlserver"},
		{"oracle", "oracle"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := dialect.GetDialect(tt.driver)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}

	_, err := dialect.GetDialect("sqlite3")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArguments(err))
}

func TestDetectDriver(t *testing.T) {
	assert.Equal(t, "mysql", dialect.DetectDriver("root:root@tcp(127.0.0.1:3306)/app"))
	assert.Equal(t, "postgres", dialect.DetectDriver("postgres://u:p@localhost/app"))
	assert.Equal(t, "postgres", dialect.DetectDriver("host=localhost dbname=app sslmode=disable"))
	assert.Equal(t, "sqlserver", dialect.DetectDriver("sqlserver://sa:pw@localhost?database=app"))
	assert.Equal(t, "oracle", dialect.DetectDriver("oracle://u:p@localhost:1521/XE"))
}

func TestMysqlDialect_Statements(t *testing.T) {
	d := &dialect.MysqlDialect{}

	assert.Equal(t, "SET foreign_key_checks = 0", d.DisableForeignKeyChecks())
	assert.Equal(t, "SET foreign_key_checks = 1", d.EnableForeignKeyChecks())
	assert.Equal(t, "TRUNCATE users", d.TruncateTableSQL("users"))
	assert.Equal(t, "DROP TABLE users", d.DropTableSQL("users"))
	assert.Equal(t, "TRUNCATE `order-items`", d.TruncateTableSQL("order-items"))
	assert.Equal(t, "`we``ird`", d.QuoteIdentifier("we`ird"))
}

func TestPostgresDialect_Statements(t *testing.T) {
	d := &dialect.PostgresDialect{}

	assert.Equal(t, "TRUNCATE TABLE users CASCADE", d.TruncateTableSQL("users"))
	assert.Equal(t, `DROP TABLE "Users" CASCADE`, d.DropTableSQL("Users"))
	assert.Contains(t, d.ListTablesQuery(), "$1")
}

func TestMSSQLDialect_Statements(t *testing.T) {
	d := &dialect.MSSQLDialect{}

	assert.Equal(t,
		"DELETE FROM users; IF OBJECTPROPERTY(OBJECT_ID(N'users'), 'TableHasIdentity') = 1 DBCC CHECKIDENT (N'users', RESEED, 0)",
		d.TruncateTableSQL("users"))
	assert.Contains(t, d.TruncateTableSQL("o'brien"), "OBJECT_ID(N'o''brien')")
	assert.Equal(t, "DROP TABLE [order items]", d.DropTableSQL("order items"))
	assert.Equal(t, "[a]]b]", d.QuoteIdentifier("a]b"))
	assert.NotContains(t, d.DisableForeignKeyChecks(), "?")
	assert.Contains(t, d.EnableForeignKeyChecks(), "WITH CHECK CHECK CONSTRAINT ALL")
}

func TestOracleDialect_Statements(t *testing.T) {
	d := &dialect.OracleDialect{}

	assert.Equal(t, "TRUNCATE TABLE USERS", d.TruncateTableSQL("USERS"))
	assert.Equal(t, `DROP TABLE "users" CASCADE CONSTRAINTS`, d.DropTableSQL("users"))
	assert.True(t, strings.HasPrefix(d.DisableForeignKeyChecks(), "BEGIN"))
	assert.Contains(t, d.DisableForeignKeyChecks(), "DISABLE CONSTRAINT")
	assert.Contains(t, d.EnableForeignKeyChecks(), "ENABLE CONSTRAINT")
}

func TestListTablesQuery_TakesOneParameter(t *testing.T) {
	placeholders := map[string]string{
		"mysql":     "?",
		"postgres":  "$1",
		"sqlserver": "@p1",
		"oracle":    ":1",
	}
	for driver, ph := range placeholders {
		d, err := dialect.GetDialect(driver)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(d.ListTablesQuery(), ph), driver)
	}
}

func TestQuoteIdentifier_ReservedWords(t *testing.T) {
	tests := []struct {
		driver string
		call   func(d dialect.Dialect) string
		want   string
	}{
		{"mysql", func(d dialect.Dialect) string { return d.TruncateTableSQL("order") }, "TRUNCATE `order`"},
		{"mysql", func(d dialect.Dialect) string { return d.DropTableSQL("group") }, "DROP TABLE `group`"},
		{"mysql", func(d dialect.Dialect) string { return d.TruncateTableSQL("Key") }, "TRUNCATE `Key`"},
		{"mysql", func(d dialect.Dialect) string { return d.TruncateTableSQL("users") }, "TRUNCATE users"},
		{"mysql", func(d dialect.Dialect) string { return d.TruncateTableSQL("orders") }, "TRUNCATE orders"},
		{"postgres", func(d dialect.Dialect) string { return d.TruncateTableSQL("user") }, `TRUNCATE TABLE "user" CASCADE`},
		{"postgres", func(d dialect.Dialect) string { return d.DropTableSQL("order") }, `DROP TABLE "order" CASCADE`},
		{"postgres", func(d dialect.Dialect) string { return d.TruncateTableSQL("users") }, "TRUNCATE TABLE users CASCADE"},
		{"sqlserver", func(d dialect.Dialect) string { return d.DropTableSQL("user") }, "DROP TABLE [user]"},
		{"oracle", func(d dialect.Dialect) string { return d.DropTableSQL("ORDER") }, `DROP TABLE "ORDER" CASCADE CONSTRAINTS`},
	}

	for _, tt := range tests {
		t.Run(tt.driver+"/"+tt.want, func(t *testing.T) {
			d, err := dialect.GetDialect(tt.driver)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.call(d))
		})
	}
}

package dialect

// Dialect abstracts the database-specific SQL the wipe commands emit.
type Dialect interface {
	// Name is the canonical engine name, used in logs.
	Name() string

	// Metadata Queries
	// ListTablesQuery lists base tables of one schema ordered by name.
	// It takes exactly one bind parameter: the schema name.
	ListTablesQuery() string
	// CurrentSchemaQuery returns the schema the session operates on.
	CurrentSchemaQuery() string

	// Constraint toggles wrapped around every plan.
	DisableForeignKeyChecks() string
	EnableForeignKeyChecks() string

	// Statement Generation
	TruncateTableSQL(table string) string
	DropTableSQL(table string) string
	QuoteIdentifier(name string) string
}

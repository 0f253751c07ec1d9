package schema

// Table is a table of the connected schema. Only the name is used.
type Table struct {
	Name string
}

// Names returns the table names in order.
func Names(tables []Table) []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

package schema

// Filter returns the tables for which keep returns true, preserving order.
func Filter(tables []Table, keep func(Table) bool) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Select keeps the tables matched by sel.
func Select(tables []Table, sel Selector) []Table {
	return Filter(tables, sel.Matches)
}

// Exclude drops every table whose name is in names.
func Exclude(tables []Table, names ...string) []Table {
	if len(names) == 0 {
		return tables
	}
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	return Filter(tables, func(t Table) bool { return !skip[t.Name] })
}

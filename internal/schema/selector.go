package schema

import "db-wipe/internal/errs"

// Selector picks the tables a command operates on: a single table by name,
// or every table. Exactly one of the two must be set.
type Selector struct {
	Table string
	All   bool
}

// Validate enforces that exactly one of Table and All is set.
func (s Selector) Validate() error {
	if s.Table != "" && s.All {
		return errs.New(errs.ErrKindInvalidArguments, `Both "--table" and "--all" can not be set at the same time`)
	}
	if s.Table == "" && !s.All {
		return errs.New(errs.ErrKindInvalidArguments, `Either "--table" must be a string or "--all" must be passed. None was given`)
	}
	return nil
}

// Matches reports whether t is selected. Names compare exactly.
func (s Selector) Matches(t Table) bool {
	if s.All {
		return true
	}
	return t.Name == s.Table
}

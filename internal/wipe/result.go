package wipe

// Result is the outcome of one planned statement.
type Result struct {
	Statement string
	Executed  bool  // false in dry-run mode
	Err       error // set when the database rejected the statement
}

// Failed reports whether the statement ran and was rejected.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Summary counts executed and failed statements.
func Summary(results []Result) (executed, failed int) {
	for _, r := range results {
		if r.Executed {
			executed++
		}
		if r.Failed() {
			failed++
		}
	}
	return executed, failed
}

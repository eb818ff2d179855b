// Package engine orchestrates one ranking run: requirement collection,
// equivalence resolution, candidate matching, scoring, and ranking.
package engine

// PreconditionError indicates a caller contract violation, the only condition
// that fails a whole run. Per-entity problems are absorbed into the run report.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Message
}

// Package requirements gathers a job posting's requirement entities together
// with their viable sets from the equivalence graph.
package requirements

import (
	"github.com/jonathan/candidate-ranker/internal/graph"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Requirement wraps one requirement entity with its resolved viable set.
// Requirements with identical viable sets are kept separate: each retains its
// own minimum-years threshold, and one held entity may satisfy several of them.
type Requirement struct {
	Entity types.RequirementEntity
	// Canonical is the identity key of the requirement's own entity.
	Canonical string
	// Viable holds the canonical names that satisfy this requirement
	// (the entity itself plus equivalence-reachable neighbors).
	Viable map[string]struct{}
}

// IsDirectName reports whether a canonical held-entity name equals the
// requirement's own entity, as opposed to an equivalence alternative.
func (r *Requirement) IsDirectName(canonical string) bool {
	return canonical == r.Canonical
}

// Contains reports whether a canonical held-entity name falls in the viable set.
func (r *Requirement) Contains(canonical string) bool {
	_, ok := r.Viable[canonical]
	return ok
}

// Collect resolves each requirement of the posting into a Requirement with its
// viable set. Requirements missing a name or carrying an unknown kind are
// skipped; the second return value counts them for the run report.
func Collect(posting *types.JobPosting, g *graph.Graph, maxHops int) ([]Requirement, int) {
	if posting == nil {
		return nil, 0
	}

	collected := make([]Requirement, 0, len(posting.Requirements))
	skipped := 0
	for _, entity := range posting.Requirements {
		canonical := types.CanonicalName(entity.Kind, entity.Name)
		if canonical == "" || !entity.Kind.Valid() {
			skipped++
			continue
		}
		collected = append(collected, Requirement{
			Entity:    entity,
			Canonical: canonical,
			Viable:    g.ViableSet(entity.Kind, entity.Name, maxHops),
		})
	}
	return collected, skipped
}

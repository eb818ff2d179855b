// Package matching determines which of a candidate's held entities satisfy a
// job posting's requirements, directly or through equivalence alternatives.
package matching

import (
	"github.com/jonathan/candidate-ranker/internal/requirements"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// EntityMatch records one held entity that landed in at least one requirement's
// viable set. A held entity yields at most one EntityMatch regardless of how
// many requirements it satisfies; MinimumYears carries the strictest
// (maximum) threshold among the matched skill requirements.
type EntityMatch struct {
	Held      types.HeldEntity
	Canonical string
	// IsDirect is true when the held entity's name equals some matched
	// requirement's own entity name, false for equivalence-only matches.
	IsDirect     bool
	MinimumYears int
}

// Stats counts the per-entity hygiene applied while matching.
type Stats struct {
	SkippedEntities int // held entities missing a name or with unknown kind
	ClampedYears    int // negative years values clamped to zero
}

// Match computes the candidate's entity matches against the collected
// requirements. Held entities that match nothing are dropped without penalty.
func Match(candidate types.Candidate, reqs []requirements.Requirement) ([]EntityMatch, Stats) {
	var stats Stats
	matches := make([]EntityMatch, 0, len(candidate.Held))

	for _, held := range candidate.Held {
		canonical := types.CanonicalName(held.Kind, held.Name)
		if canonical == "" || !held.Kind.Valid() {
			stats.SkippedEntities++
			continue
		}
		if held.Years < 0 {
			held.Years = 0
			stats.ClampedYears++
		}

		match := EntityMatch{Held: held, Canonical: canonical}
		matched := false
		for i := range reqs {
			req := &reqs[i]
			if req.Entity.Kind != held.Kind || !req.Contains(canonical) {
				continue
			}
			matched = true
			if req.IsDirectName(canonical) {
				match.IsDirect = true
			}
			if req.Entity.MinimumYears > match.MinimumYears {
				match.MinimumYears = req.Entity.MinimumYears
			}
		}
		if matched {
			matches = append(matches, match)
		}
	}
	return matches, stats
}

package snapshot

import (
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Report counts the hygiene applied during normalization.
type Report struct {
	SkippedEntities int // requirement or held entities dropped for a missing name or unknown kind
	ClampedYears    int // negative years values clamped to zero
}

// Normalize canonicalizes a snapshot in place: names are trimmed, skill names
// lower-cased, levels mapped onto the recognized set, malformed entities
// dropped, and negative years clamped. Canonicalization happens here once so
// downstream comparisons never re-normalize display data.
func Normalize(snap *types.Snapshot) Report {
	var report Report
	if snap == nil {
		return report
	}

	if snap.Posting != nil {
		snap.Posting.Title = strings.TrimSpace(snap.Posting.Title)
		kept := snap.Posting.Requirements[:0]
		for _, req := range snap.Posting.Requirements {
			req.Name = types.CanonicalName(req.Kind, req.Name)
			if req.Name == "" || !req.Kind.Valid() {
				report.SkippedEntities++
				continue
			}
			if req.MinimumYears < 0 {
				req.MinimumYears = 0
				report.ClampedYears++
			}
			kept = append(kept, req)
		}
		snap.Posting.Requirements = kept
	}

	for i := range snap.Candidates {
		candidate := &snap.Candidates[i]
		candidate.Name = strings.TrimSpace(candidate.Name)

		kept := candidate.Held[:0]
		for _, held := range candidate.Held {
			held.Name = types.CanonicalName(held.Kind, held.Name)
			if held.Name == "" || !held.Kind.Valid() {
				report.SkippedEntities++
				continue
			}
			if held.Years < 0 {
				held.Years = 0
				report.ClampedYears++
			}
			if held.Kind == types.KindSkill {
				held.Level = types.NormalizeLevel(held.Level)
			}
			kept = append(kept, held)
		}
		candidate.Held = kept
	}

	return report
}

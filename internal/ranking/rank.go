// Package ranking orders candidate scores deterministically and assembles the
// final explain-trace output.
package ranking

import (
	"sort"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// DefaultLimit is the default result truncation limit.
const DefaultLimit = 10

// Rank sorts candidate scores by total score descending, match count
// descending, then name ascending, truncates to limit, and assembles the
// ranked entries. The name tie-break makes the order total: identical inputs
// produce identical output across runs.
func Rank(scores []types.CandidateScore, limit int) []types.RankedCandidate {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ordered := make([]types.CandidateScore, len(scores))
	copy(ordered, scores)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TotalScore != ordered[j].TotalScore {
			return ordered[i].TotalScore > ordered[j].TotalScore
		}
		if ordered[i].MatchCount != ordered[j].MatchCount {
			return ordered[i].MatchCount > ordered[j].MatchCount
		}
		return ordered[i].Name < ordered[j].Name
	})

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	ranked := make([]types.RankedCandidate, 0, len(ordered))
	for i, score := range ordered {
		ranked = append(ranked, types.RankedCandidate{
			Rank:            i + 1,
			Name:            score.Name,
			TotalScore:      score.TotalScore,
			MatchCount:      score.MatchCount,
			MatchedEntities: distinctEntityNames(score.Details),
			Details:         score.Details,
		})
	}
	return ranked
}

// distinctEntityNames lists the matched entity names in first-seen order,
// deduplicated. Details themselves are not deduplicated: two held entities
// matching the same requirement both keep their own entry.
func distinctEntityNames(details []types.MatchDetail) []string {
	seen := make(map[string]struct{}, len(details))
	names := make([]string, 0, len(details))
	for _, d := range details {
		if _, ok := seen[d.EntityName]; ok {
			continue
		}
		seen[d.EntityName] = struct{}{}
		names = append(names, d.EntityName)
	}
	return names
}

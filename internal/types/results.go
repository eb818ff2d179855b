package types

// MatchDetail records how one held entity contributed to a candidate's total.
// Details are derived per run and never persisted by the engine itself.
type MatchDetail struct {
	EntityKind     Kind    `json:"entity_kind"`
	EntityName     string  `json:"entity_name"`
	Years          int     `json:"years,omitempty"`
	Level          string  `json:"level,omitempty"`
	IsDirect       bool    `json:"is_direct"`
	ComponentScore float64 `json:"component_score"`
}

// CandidateScore is the per-candidate aggregate produced by the score calculator.
type CandidateScore struct {
	Name       string        `json:"name"`
	TotalScore float64       `json:"total_score"`
	MatchCount int           `json:"match_count"`
	Details    []MatchDetail `json:"details"`
}

// RankedCandidate is one entry of the final ranked output, including the
// explain trace the presentation layer renders.
type RankedCandidate struct {
	Rank            int           `json:"rank"`
	Name            string        `json:"name"`
	TotalScore      float64       `json:"total_score"`
	MatchCount      int           `json:"match_count"`
	MatchedEntities []string      `json:"matched_entities"`
	Details         []MatchDetail `json:"details"`
}

// RunReport carries per-run bookkeeping surfaced to the caller alongside the
// ranked list: how many malformed entities were skipped and how many negative
// years values were clamped to zero.
type RunReport struct {
	SkippedEntities int `json:"skipped_entities"`
	ClampedYears    int `json:"clamped_years"`
	CandidatesIn    int `json:"candidates_in"`
	CandidatesOut   int `json:"candidates_out"`
}

// RankedResult is the full output of one engine run.
type RankedResult struct {
	PostingTitle string            `json:"posting_title"`
	Ranked       []RankedCandidate `json:"ranked"`
	Report       RunReport         `json:"report"`
}

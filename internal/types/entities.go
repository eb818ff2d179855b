// Package types provides type definitions for structured data used throughout the candidate-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Kind identifies the category of a requirement or held entity.
type Kind string

// Entity kinds recognized by the engine.
const (
	KindSkill        Kind = "skill"
	KindExperience   Kind = "experience"
	KindFieldOfStudy Kind = "field_of_study"
)

// Valid reports whether k is one of the recognized entity kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSkill, KindExperience, KindFieldOfStudy:
		return true
	}
	return false
}

// RequirementEntity represents a single requirement attached to a job posting.
// MinimumYears and Important only apply to some kinds (see Kind constants).
type RequirementEntity struct {
	Kind         Kind   `json:"kind"`
	Name         string `json:"name"`
	MinimumYears int    `json:"minimum_years,omitempty"` // skills only
	Important    bool   `json:"important,omitempty"`     // skills and fields of study
}

// JobPosting represents a job posting with its ordered requirement set.
type JobPosting struct {
	ID           string              `json:"id,omitempty"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	Requirements []RequirementEntity `json:"requirements"`
}

// HeldEntity represents a skill, experience, or field of study a candidate declares.
type HeldEntity struct {
	Kind  Kind   `json:"kind"`
	Name  string `json:"name"`
	Years int    `json:"years,omitempty"` // skills and experience
	Level string `json:"level,omitempty"` // skills only: beginner/intermediate/advanced/expert
}

// Candidate represents one candidate and the entities they hold.
type Candidate struct {
	Name string       `json:"name"`
	Held []HeldEntity `json:"held"`
}

// EquivalenceEdge represents an undirected "alternative of" relation between two
// entities of the same kind.
type EquivalenceEdge struct {
	Kind Kind   `json:"kind"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// Snapshot bundles everything the engine needs for one scoring run: the job
// posting, the candidate pool the query layer pre-filtered for it, and the
// equivalence edges among the relevant entities. Snapshots are treated as
// immutable once handed to the engine.
type Snapshot struct {
	Posting    *JobPosting       `json:"posting"`
	Candidates []Candidate       `json:"candidates"`
	Edges      []EquivalenceEdge `json:"edges,omitempty"`
}

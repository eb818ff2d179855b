package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-ranker/internal/types"
)

func TestNormalize_CanonicalizesSkillNames(t *testing.T) {
	snap := &types.Snapshot{
		Posting: &types.JobPosting{
			Title: "  Backend Engineer  ",
			Requirements: []types.RequirementEntity{
				{Kind: types.KindSkill, Name: "  PyThOn  "},
				{Kind: types.KindExperience, Name: "  Software Engineer "},
			},
		},
		Candidates: []types.Candidate{
			{Name: " Ada ", Held: []types.HeldEntity{
				{Kind: types.KindSkill, Name: "PYTHON", Years: 2, Level: "Advanced"},
			}},
		},
	}

	report := Normalize(snap)

	assert.Zero(t, report.SkippedEntities)
	assert.Equal(t, "Backend Engineer", snap.Posting.Title)
	assert.Equal(t, "python", snap.Posting.Requirements[0].Name)
	// Experience titles keep their case, only surrounding whitespace goes.
	assert.Equal(t, "Software Engineer", snap.Posting.Requirements[1].Name)
	assert.Equal(t, "Ada", snap.Candidates[0].Name)
	assert.Equal(t, "python", snap.Candidates[0].Held[0].Name)
	assert.Equal(t, "advanced", snap.Candidates[0].Held[0].Level)
}

func TestNormalize_DropsMalformedEntities(t *testing.T) {
	snap := &types.Snapshot{
		Posting: &types.JobPosting{
			Title: "Ops",
			Requirements: []types.RequirementEntity{
				{Kind: types.KindSkill, Name: "   "},
				{Kind: "degree", Name: "BSc"},
				{Kind: types.KindSkill, Name: "Terraform"},
			},
		},
		Candidates: []types.Candidate{
			{Name: "Sam", Held: []types.HeldEntity{
				{Kind: types.KindSkill, Name: ""},
				{Kind: types.KindSkill, Name: "Terraform", Years: 1, Level: "beginner"},
			}},
		},
	}

	report := Normalize(snap)

	assert.Equal(t, 3, report.SkippedEntities)
	require.Len(t, snap.Posting.Requirements, 1)
	require.Len(t, snap.Candidates[0].Held, 1)
}

func TestNormalize_ClampsNegativeYears(t *testing.T) {
	snap := &types.Snapshot{
		Posting: &types.JobPosting{
			Title: "Ops",
			Requirements: []types.RequirementEntity{
				{Kind: types.KindSkill, Name: "Terraform", MinimumYears: -2},
			},
		},
		Candidates: []types.Candidate{
			{Name: "Sam", Held: []types.HeldEntity{
				{Kind: types.KindExperience, Name: "SRE", Years: -5},
			}},
		},
	}

	report := Normalize(snap)

	assert.Equal(t, 2, report.ClampedYears)
	assert.Equal(t, 0, snap.Posting.Requirements[0].MinimumYears)
	assert.Equal(t, 0, snap.Candidates[0].Held[0].Years)
}

func TestNormalize_UnknownLevelFallsBackToBeginner(t *testing.T) {
	snap := &types.Snapshot{
		Candidates: []types.Candidate{
			{Name: "Eve", Held: []types.HeldEntity{
				{Kind: types.KindSkill, Name: "Go", Level: "grandmaster"},
			}},
		},
	}

	_ = Normalize(snap)

	assert.Equal(t, types.LevelBeginner, snap.Candidates[0].Held[0].Level)
}

func TestNormalize_NilSnapshot(t *testing.T) {
	report := Normalize(nil)

	assert.Zero(t, report)
}

func TestNormalize_Idempotent(t *testing.T) {
	snap := &types.Snapshot{
		Posting: &types.JobPosting{
			Title: "Backend Engineer",
			Requirements: []types.RequirementEntity{
				{Kind: types.KindSkill, Name: "Python", MinimumYears: 3},
			},
		},
		Candidates: []types.Candidate{
			{Name: "Ada", Held: []types.HeldEntity{
				{Kind: types.KindSkill, Name: "Python", Years: 2, Level: "advanced"},
			}},
		},
	}

	first := Normalize(snap)
	assert.Zero(t, first.SkippedEntities)

	second := Normalize(snap)
	assert.Zero(t, second)
}

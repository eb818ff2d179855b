package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-ranker/internal/types"
)

func backendSnapshot() *types.Snapshot {
	return &types.Snapshot{
		Posting: &types.JobPosting{
			Title: "Backend Engineer",
			Requirements: []types.RequirementEntity{
				{Kind: types.KindSkill, Name: "Python", MinimumYears: 3, Important: true},
				{Kind: types.KindExperience, Name: "Software Engineer"},
			},
		},
		Candidates: []types.Candidate{
			{
				Name: "Ada",
				Held: []types.HeldEntity{
					{Kind: types.KindSkill, Name: "Python", Years: 3, Level: "advanced"},
					{Kind: types.KindExperience, Name: "Software Engineer", Years: 5},
				},
			},
			{
				Name: "Grace",
				Held: []types.HeldEntity{
					{Kind: types.KindSkill, Name: "Ruby", Years: 5, Level: "expert"},
				},
			},
			{
				Name: "NoMatch",
				Held: []types.HeldEntity{
					{Kind: types.KindSkill, Name: "COBOL", Years: 10, Level: "expert"},
				},
			},
		},
		Edges: []types.EquivalenceEdge{
			{Kind: types.KindSkill, A: "Python", B: "Ruby"},
		},
	}
}

func TestRank_EndToEnd(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.Rank(backendSnapshot())

	require.NoError(t, err)
	require.Len(t, result.Ranked, 2)

	// Ada: direct python 1.0 + direct experience 1.0 = 2.0
	ada := result.Ranked[0]
	assert.Equal(t, "Ada", ada.Name)
	assert.Equal(t, 2.0, ada.TotalScore)
	assert.Equal(t, 2, ada.MatchCount)

	// Grace: alternative python via ruby, expert, years satisfied:
	// 0.7 * (0.3*1.0 + 0.7*1.2) = 0.8 (rounded)
	grace := result.Ranked[1]
	assert.Equal(t, "Grace", grace.Name)
	assert.Equal(t, 0.8, grace.TotalScore)
	require.Len(t, grace.Details, 1)
	assert.False(t, grace.Details[0].IsDirect)

	// NoMatch is excluded entirely, not scored at zero.
	assert.Equal(t, 3, result.Report.CandidatesIn)
	assert.Equal(t, 2, result.Report.CandidatesOut)
}

func TestRank_NilSnapshotIsPreconditionError(t *testing.T) {
	e := New(DefaultOptions())

	_, err := e.Rank(nil)

	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
}

func TestRank_MissingPostingIsPreconditionError(t *testing.T) {
	e := New(DefaultOptions())

	_, err := e.Rank(&types.Snapshot{Candidates: []types.Candidate{{Name: "Ada"}}})

	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
}

func TestRank_EmptyRequirementsIsEmptyListNotError(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.Rank(&types.Snapshot{
		Posting:    &types.JobPosting{Title: "Anything Goes"},
		Candidates: []types.Candidate{{Name: "Ada", Held: []types.HeldEntity{{Kind: types.KindSkill, Name: "go"}}}},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Ranked)
}

func TestRank_SkippedAndClampedCounted(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.Rank(&types.Snapshot{
		Posting: &types.JobPosting{
			Title: "Ops",
			Requirements: []types.RequirementEntity{
				{Kind: types.KindSkill, Name: ""},
				{Kind: types.KindSkill, Name: "Terraform", MinimumYears: 2},
			},
		},
		Candidates: []types.Candidate{
			{
				Name: "Sam",
				Held: []types.HeldEntity{
					{Kind: types.KindSkill, Name: "Terraform", Years: -1, Level: "advanced"},
					{Kind: types.KindSkill, Name: ""},
				},
			},
			{Name: "", Held: []types.HeldEntity{{Kind: types.KindSkill, Name: "Terraform", Years: 2}}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Report.SkippedEntities) // blank requirement, blank held, nameless candidate
	assert.Equal(t, 1, result.Report.ClampedYears)
	require.Len(t, result.Ranked, 1)
}

func TestRank_Deterministic(t *testing.T) {
	e := New(DefaultOptions())
	snapshot := backendSnapshot()

	first, err := e.Rank(snapshot)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := e.Rank(snapshot)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestRank_ResultLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.ResultLimit = 1
	e := New(opts)

	result, err := e.Rank(backendSnapshot())

	require.NoError(t, err)
	require.Len(t, result.Ranked, 1)
	assert.Equal(t, "Ada", result.Ranked[0].Name)
}

func TestRank_MaxHopsOne(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxHops = 1
	e := New(opts)

	// perl is two hops from python and must stop matching at one hop.
	result, err := e.Rank(&types.Snapshot{
		Posting: &types.JobPosting{
			Title: "Scripting",
			Requirements: []types.RequirementEntity{
				{Kind: types.KindSkill, Name: "Python"},
			},
		},
		Candidates: []types.Candidate{
			{Name: "RubyDev", Held: []types.HeldEntity{{Kind: types.KindSkill, Name: "Ruby", Years: 1, Level: "advanced"}}},
			{Name: "PerlDev", Held: []types.HeldEntity{{Kind: types.KindSkill, Name: "Perl", Years: 1, Level: "advanced"}}},
		},
		Edges: []types.EquivalenceEdge{
			{Kind: types.KindSkill, A: "python", B: "ruby"},
			{Kind: types.KindSkill, A: "ruby", B: "perl"},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Ranked, 1)
	assert.Equal(t, "RubyDev", result.Ranked[0].Name)
}

func TestRankAll_ConcurrentRunsKeepOrder(t *testing.T) {
	e := New(DefaultOptions())
	snapshots := []*types.Snapshot{
		backendSnapshot(),
		{Posting: &types.JobPosting{Title: "Empty"}},
		backendSnapshot(),
	}

	results, err := e.RankAll(context.Background(), snapshots)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Backend Engineer", results[0].PostingTitle)
	assert.Equal(t, "Empty", results[1].PostingTitle)
	assert.Len(t, results[1].Ranked, 0)
	assert.Equal(t, results[0].Ranked, results[2].Ranked)
}

func TestRankAll_PropagatesPreconditionFailure(t *testing.T) {
	e := New(DefaultOptions())

	_, err := e.RankAll(context.Background(), []*types.Snapshot{backendSnapshot(), nil})

	require.Error(t, err)
	var precondition *PreconditionError
	assert.ErrorAs(t, err, &precondition)
}

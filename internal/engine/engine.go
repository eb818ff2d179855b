package engine

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-ranker/internal/graph"
	"github.com/jonathan/candidate-ranker/internal/matching"
	"github.com/jonathan/candidate-ranker/internal/ranking"
	"github.com/jonathan/candidate-ranker/internal/requirements"
	"github.com/jonathan/candidate-ranker/internal/scoring"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Options holds the tunables exposed to callers. Zero values fall back to the
// defaults, so Options{} is usable as-is.
type Options struct {
	MaxHops     int
	ResultLimit int
	Weights     scoring.Weights
}

// DefaultOptions returns the reference configuration: two-hop equivalence
// traversal, ten results, default scoring weights.
func DefaultOptions() Options {
	return Options{
		MaxHops:     graph.DefaultMaxHops,
		ResultLimit: ranking.DefaultLimit,
		Weights:     scoring.DefaultWeights(),
	}
}

func (o Options) withDefaults() Options {
	if o.MaxHops <= 0 {
		o.MaxHops = graph.DefaultMaxHops
	}
	if o.ResultLimit <= 0 {
		o.ResultLimit = ranking.DefaultLimit
	}
	if o.Weights.LevelMultipliers == nil {
		o.Weights = scoring.DefaultWeights()
	}
	return o
}

// Engine is a pure, stateless scorer over in-memory snapshots. A single Engine
// value may run many snapshots concurrently; each run reads only its own
// snapshot and the immutable options.
type Engine struct {
	opts Options
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

// Rank scores and ranks the snapshot's candidates against its job posting.
// A missing posting is the only fatal condition; malformed entities are
// skipped and counted in the run report, and a posting with no requirements
// yields an empty ranked list without error.
func (e *Engine) Rank(snapshot *types.Snapshot) (*types.RankedResult, error) {
	if snapshot == nil || snapshot.Posting == nil {
		return nil, &PreconditionError{Message: "snapshot has no job posting"}
	}

	result := &types.RankedResult{
		PostingTitle: snapshot.Posting.Title,
		Ranked:       []types.RankedCandidate{},
	}
	result.Report.CandidatesIn = len(snapshot.Candidates)

	g := graph.New(snapshot.Edges)
	reqs, skipped := requirements.Collect(snapshot.Posting, g, e.opts.MaxHops)
	result.Report.SkippedEntities += skipped
	if len(reqs) == 0 {
		return result, nil
	}

	scores := make([]types.CandidateScore, 0, len(snapshot.Candidates))
	for _, candidate := range snapshot.Candidates {
		if candidate.Name == "" {
			result.Report.SkippedEntities++
			continue
		}
		matches, stats := matching.Match(candidate, reqs)
		result.Report.SkippedEntities += stats.SkippedEntities
		result.Report.ClampedYears += stats.ClampedYears
		if len(matches) == 0 {
			// Existence-based matching: no matches means no entry at all,
			// not a zero-scored one.
			continue
		}
		scores = append(scores, scoring.Score(candidate.Name, matches, e.opts.Weights))
	}

	result.Ranked = ranking.Rank(scores, e.opts.ResultLimit)
	result.Report.CandidatesOut = len(result.Ranked)
	return result, nil
}

// RankAll runs independent snapshots concurrently. Results keep the order of
// the input slice. The first failing run cancels the rest.
func (e *Engine) RankAll(ctx context.Context, snapshots []*types.Snapshot) ([]*types.RankedResult, error) {
	results := make([]*types.RankedResult, len(snapshots))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for i, snapshot := range snapshots {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := e.Rank(snapshot)
			if err != nil {
				return fmt.Errorf("snapshot %d: %w", i, err)
			}
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

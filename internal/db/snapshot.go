package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-ranker/internal/graph"
	"github.com/jonathan/candidate-ranker/internal/requirements"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// LoadSnapshot assembles a ranking snapshot for a stored posting: the
// posting with its requirements, all equivalence edges, and the candidates
// holding at least one entity in the requirements' viable universe.
// Returns (nil, nil) when the posting does not exist.
func (db *DB) LoadSnapshot(ctx context.Context, postingID uuid.UUID, maxHops int) (*types.Snapshot, error) {
	posting, err := db.GetJobPosting(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, nil
	}

	edges, err := db.GetEquivalenceEdges(ctx)
	if err != nil {
		return nil, err
	}

	g := graph.New(edges)
	reqs, _ := requirements.Collect(posting, g, maxHops)

	universe := map[string]struct{}{}
	for _, r := range reqs {
		for name := range r.Viable {
			universe[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(universe))
	for name := range universe {
		names = append(names, name)
	}

	candidates, err := db.GetCandidatesForEntities(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot candidates: %w", err)
	}

	return &types.Snapshot{
		Posting:    posting,
		Candidates: candidates,
		Edges:      edges,
	}, nil
}

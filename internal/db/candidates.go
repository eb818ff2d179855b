package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// GetCandidates returns every candidate with their held entities
func (db *DB) GetCandidates(ctx context.Context) ([]types.Candidate, error) {
	return db.queryCandidates(ctx,
		`SELECT c.name, ce.kind, ce.name, ce.years, ce.level
		 FROM candidates c
		 LEFT JOIN candidate_entities ce ON ce.candidate_id = c.id
		 ORDER BY c.name, ce.id`,
	)
}

// GetCandidatesForEntities returns candidates holding at least one entity
// whose name matches the given set, compared case-insensitively. The filter
// is a coarse superset: exact-match policies are applied later in Go, so a
// candidate admitted here can still end up with no matches.
func (db *DB) GetCandidatesForEntities(ctx context.Context, names []string) ([]types.Candidate, error) {
	if len(names) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	return db.queryCandidates(ctx,
		`SELECT c.name, ce.kind, ce.name, ce.years, ce.level
		 FROM candidates c
		 JOIN candidate_entities ce ON ce.candidate_id = c.id
		 WHERE c.id IN (
		     SELECT candidate_id FROM candidate_entities
		     WHERE lower(name) = ANY($1)
		 )
		 ORDER BY c.name, ce.id`,
		lowered,
	)
}

func (db *DB) queryCandidates(ctx context.Context, query string, args ...any) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.Candidate
	index := map[string]int{}
	for rows.Next() {
		var name string
		var kind, entityName *string
		var years *int
		var level *string
		if err := rows.Scan(&name, &kind, &entityName, &years, &level); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}

		i, ok := index[name]
		if !ok {
			candidates = append(candidates, types.Candidate{Name: name})
			i = len(candidates) - 1
			index[name] = i
		}

		// LEFT JOIN can produce candidates with no entities
		if kind == nil {
			continue
		}
		held := types.HeldEntity{Kind: types.Kind(*kind), Name: *entityName}
		if years != nil {
			held.Years = *years
		}
		if level != nil {
			held.Level = *level
		}
		candidates[i].Held = append(candidates[i].Held, held)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	return candidates, nil
}

package db

import (
	"context"
	"fmt"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// GetEquivalenceEdges returns every stored equivalence edge
func (db *DB) GetEquivalenceEdges(ctx context.Context) ([]types.EquivalenceEdge, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT kind, entity_a, entity_b FROM equivalence_edges ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get equivalence edges: %w", err)
	}
	defer rows.Close()

	var edges []types.EquivalenceEdge
	for rows.Next() {
		var e types.EquivalenceEdge
		if err := rows.Scan(&e.Kind, &e.A, &e.B); err != nil {
			return nil, fmt.Errorf("failed to scan equivalence edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read equivalence edges: %w", err)
	}

	return edges, nil
}

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// CreateRun creates a new ranking run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, postingID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO ranking_runs (posting_id, status)
		 VALUES ($1, $2)
		 RETURNING id`,
		postingID, RunStatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a ranking run as completed or failed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE ranking_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveResults stores the ranked result for a run as JSON
func (db *DB) SaveResults(ctx context.Context, runID uuid.UUID, result *types.RankedResult) error {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO run_results (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	return nil
}

// GetRunResults retrieves the ranked result stored for a run.
// Returns (nil, nil) when no results exist for the run.
func (db *DB) GetRunResults(ctx context.Context, runID uuid.UUID) (*types.RankedResult, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM run_results WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}

	var result types.RankedResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	return &result, nil
}

// GetRun retrieves a run record by ID. Returns (nil, nil) when missing.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var r Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, posting_id, status, created_at, completed_at
		 FROM ranking_runs WHERE id = $1`,
		runID,
	).Scan(&r.ID, &r.PostingID, &r.Status, &r.CreatedAt, &r.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

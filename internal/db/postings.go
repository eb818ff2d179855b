package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// GetJobPosting retrieves a posting and its requirement entities by ID.
// Returns (nil, nil) when the posting does not exist.
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	var p types.JobPosting
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description FROM job_postings WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT kind, name, minimum_years, important
		 FROM posting_requirements
		 WHERE posting_id = $1
		 ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get posting requirements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r types.RequirementEntity
		if err := rows.Scan(&r.Kind, &r.Name, &r.MinimumYears, &r.Important); err != nil {
			return nil, fmt.Errorf("failed to scan requirement: %w", err)
		}
		p.Requirements = append(p.Requirements, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read requirements: %w", err)
	}

	return &p, nil
}

// ListJobPostings returns all postings, newest first, without requirements
func (db *DB) ListJobPostings(ctx context.Context) ([]PostingRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, created_at
		 FROM job_postings
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []PostingRecord
	for rows.Next() {
		var p PostingRecord
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read postings: %w", err)
	}

	return postings, nil
}

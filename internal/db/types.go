package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a persisted ranking run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	PostingID   uuid.UUID  `json:"posting_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status constants
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// PostingRecord is a job posting row, requirements loaded separately
type PostingRecord struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

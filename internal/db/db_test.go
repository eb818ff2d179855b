package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStatusConstants(t *testing.T) {
	// Verify status constants are defined and distinct
	statuses := []string{
		RunStatusRunning,
		RunStatusCompleted,
		RunStatusFailed,
	}

	seen := map[string]bool{}
	for _, s := range statuses {
		assert.NotEmpty(t, s, "status constant should not be empty")
		assert.False(t, seen[s], "status constant should be unique")
		seen[s] = true
	}
}

func TestRunType(t *testing.T) {
	// Verify Run struct can be instantiated
	run := Run{
		Status: RunStatusRunning,
	}

	assert.Equal(t, RunStatusRunning, run.Status)
	assert.Nil(t, run.CompletedAt)
}

package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/candidate-ranker/internal/schemas"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Load reads a snapshot from a JSON file. The file is checked against the
// snapshot schema when the schema file can be located, then decoded.
func Load(path string) (*types.Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("snapshot file not accessible: %s", path),
			Cause:   err,
		}
	}

	if err := schemas.ValidateSnapshotFile(path); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("snapshot file failed schema validation: %s", path),
			Cause:   err,
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var snap types.Snapshot
	if err := json.Unmarshal(content, &snap); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &snap, nil
}

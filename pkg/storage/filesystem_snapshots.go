package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

// AppendSnapshot adds one snapshot to the history file. Snapshots are
// immutable once written; the history only ever grows.
func (r *FilesystemRepository) AppendSnapshot(snapshot program.Snapshot) error {
	snapshots, err := r.LoadSnapshots()
	if err != nil {
		return err
	}

	path, err := r.ResolvePath(SnapshotsFile)
	if err != nil {
		return err
	}

	snapshots = append(snapshots, snapshot)
	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshots: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadSnapshots() ([]program.Snapshot, error) {
	path, err := r.ResolvePath(SnapshotsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []program.Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshots file: %w", err)
	}

	var snapshots []program.Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshots: %w", err)
	}

	return snapshots, nil
}

package application

import "errors"

var (
	// ErrNotInitialized indicates the workspace has no .paceline directory yet.
	ErrNotInitialized = errors.New("workspace not initialized (run 'paceline init')")
	// ErrNoProgram indicates no program has been defined in the workspace.
	ErrNoProgram = errors.New("no program found")
	// ErrProgramExists indicates an init attempt on a workspace that already
	// holds a program.
	ErrProgramExists = errors.New("program already exists")
	// ErrNoSamples indicates an operation that needs at least one recorded
	// metric sample.
	ErrNoSamples = errors.New("no metric samples recorded")
	// ErrInsufficientSnapshots indicates a trend request with fewer than two
	// snapshots in the history.
	ErrInsufficientSnapshots = errors.New("trend analysis requires at least 2 snapshots")
	// ErrSnapshotNotFound indicates a referenced snapshot id that does not
	// exist in the history.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrNoActivities indicates a schedule request on an empty activity
	// network.
	ErrNoActivities = errors.New("no activities defined")
	// ErrActivityNotFound indicates a referenced activity id that does not
	// exist in the network.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidTarget indicates a non-positive target cost.
	ErrInvalidTarget = errors.New("target cost must be positive")
)

package forecast

import "errors"

var (
	// ErrInvalidBudget indicates a zero or negative budget at completion.
	ErrInvalidBudget = errors.New("budget at completion must be positive")
	// ErrNoSnapshots indicates a forecast request without any recorded
	// snapshots to project from.
	ErrNoSnapshots = errors.New("no snapshots available for forecasting")
)

package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain/forecast"
	"github.com/felixgeelhaar/paceline/pkg/domain/schedule"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, application.ErrNotInitialized):
		return NewCLIError("workspace not initialized", "Run 'paceline init <program-id>' to create one", err)
	case errors.Is(err, application.ErrNoProgram):
		return NewCLIError("no program found", "Run 'paceline init <program-id>' to define the program", err)
	case errors.Is(err, application.ErrProgramExists):
		return NewCLIError("program already exists", "Adjust the baseline with 'paceline program rebaseline' instead", err)
	case errors.Is(err, application.ErrNoSamples):
		return NewCLIError("no metric samples recorded", "Record one with 'paceline sample add'", err)
	case errors.Is(err, application.ErrInsufficientSnapshots):
		return NewCLIError("not enough snapshots for a trend", "Create snapshots over time with 'paceline snapshot create'", err)
	case errors.Is(err, application.ErrSnapshotNotFound):
		return NewCLIError("snapshot not found", "Run 'paceline snapshot list' to see known ids", err)
	case errors.Is(err, application.ErrNoActivities):
		return NewCLIError("no activities defined", "Add one with 'paceline activity add'", err)
	case errors.Is(err, application.ErrActivityNotFound):
		return NewCLIError("activity not found", "Run 'paceline activity list' to see known ids", err)
	case errors.Is(err, application.ErrInvalidTarget):
		return NewCLIError("target cost must be positive", "Pass a target above the actual cost spent so far", err)
	case errors.Is(err, forecast.ErrNoSnapshots):
		return NewCLIError("no snapshots available for forecasting", "Create one with 'paceline snapshot create'", err)
	case errors.Is(err, schedule.ErrCyclicDependency):
		return NewCLIError("cyclic dependency detected", "Review the depends_on fields of the activities", err)
	case errors.Is(err, schedule.ErrUnknownDependency):
		return NewCLIError("dependency references unknown activity", "Add the missing activity first or fix the id", err)
	case errors.Is(err, schedule.ErrDuplicateActivity):
		return NewCLIError("duplicate activity id", "Run 'paceline activity list' to see existing ids", err)
	}

	return err
}

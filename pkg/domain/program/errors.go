package program

import "errors"

var (
	// ErrEmptyProgramID indicates a blank program identifier.
	ErrEmptyProgramID = errors.New("program ID cannot be empty")
	// ErrEmptyProgramName indicates a blank program name.
	ErrEmptyProgramName = errors.New("program name cannot be empty")
	// ErrInvalidProgramBudget indicates a budget at completion of zero or less.
	ErrInvalidProgramBudget = errors.New("program budget must be positive")
	// ErrMissingBaseline indicates a baseline without both dates set.
	ErrMissingBaseline = errors.New("baseline requires start and finish dates")
	// ErrInvalidBaseline indicates a baseline finishing on or before its start.
	ErrInvalidBaseline = errors.New("baseline finish must be after start")
)

package schedule

import "errors"

var (
	// ErrCyclicDependency indicates the activity network contains a cycle.
	ErrCyclicDependency = errors.New("cyclic dependency detected")
	// ErrUnknownDependency indicates a dependency on an id outside the network.
	ErrUnknownDependency = errors.New("dependency references unknown activity")
	// ErrDuplicateActivity indicates two activities sharing one id.
	ErrDuplicateActivity = errors.New("duplicate activity id")
	// ErrEmptyActivityID indicates a blank activity identifier.
	ErrEmptyActivityID = errors.New("activity ID cannot be empty")
	// ErrNegativeDuration indicates a duration below zero.
	ErrNegativeDuration = errors.New("activity duration cannot be negative")
	// ErrSelfDependency indicates an activity depending on itself.
	ErrSelfDependency = errors.New("activity cannot depend on itself")
)

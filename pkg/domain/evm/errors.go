package evm

import "errors"

var (
	// ErrNegativeAmount indicates a planned value, earned value or actual
	// cost below zero.
	ErrNegativeAmount = errors.New("amounts must be non-negative")
	// ErrInvalidBudget indicates a budget at completion of zero or less.
	ErrInvalidBudget = errors.New("budget at completion must be positive")
	// ErrUnknownMetric indicates a metric selector outside the known set.
	ErrUnknownMetric = errors.New("unknown metric selector")
)

package analytics

import "errors"

var (
	// ErrInvalidSlopeThreshold indicates a non-positive slope threshold.
	ErrInvalidSlopeThreshold = errors.New("slope threshold must be positive")
	// ErrInvalidZScoreThreshold indicates a non-positive z-score threshold.
	ErrInvalidZScoreThreshold = errors.New("z-score threshold must be positive")
	// ErrInvalidWindow indicates a moving-average window below 1.
	ErrInvalidWindow = errors.New("moving average window must be at least 1")
)

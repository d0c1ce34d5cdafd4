// Package analytics provides statistical trend and anomaly analysis over
// ordered metric series.
package analytics

// TrendDirection labels the movement of a metric over time.
type TrendDirection string

const (
	// TrendImproving indicates the metric is rising faster than the slope threshold.
	TrendImproving TrendDirection = "improving"
	// TrendDeclining indicates the metric is falling faster than the slope threshold.
	TrendDeclining TrendDirection = "declining"
	// TrendStable indicates the metric is moving within the slope threshold.
	TrendStable TrendDirection = "stable"
)

// IsValid returns true for a known trend direction.
func (d TrendDirection) IsValid() bool {
	switch d {
	case TrendImproving, TrendDeclining, TrendStable:
		return true
	}
	return false
}

// String returns the direction's wire representation.
func (d TrendDirection) String() string {
	return string(d)
}

// ClassifyTrend maps a regression slope to a direction. Slopes within
// threshold of zero are stable.
func ClassifyTrend(slope, threshold float64) TrendDirection {
	switch {
	case slope > threshold:
		return TrendImproving
	case slope < -threshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// TrendResult is the full trend analysis of one metric series.
type TrendResult struct {
	Regression    RegressionResult `json:"regression" yaml:"regression"`
	CurrentValue  float64          `json:"current_value" yaml:"current_value"`
	AverageValue  float64          `json:"average_value" yaml:"average_value"`
	Volatility    float64          `json:"volatility" yaml:"volatility"`
	MovingAverage []float64        `json:"moving_average" yaml:"moving_average"`
	Direction     TrendDirection   `json:"direction" yaml:"direction"`
	Samples       int              `json:"samples" yaml:"samples"`
}

// IsPositive returns true if the series is improving.
func (t TrendResult) IsPositive() bool {
	return t.Direction == TrendImproving
}

// IsNegative returns true if the series is declining.
func (t TrendResult) IsNegative() bool {
	return t.Direction == TrendDeclining
}

// AnalyzeSeries runs regression, summary statistics and moving-average
// smoothing over an ordered series. An empty series yields the zero
// result with a stable direction; a single point yields its value as
// both current and average with slope 0.
func AnalyzeSeries(values []float64, t Thresholds) (TrendResult, error) {
	if err := t.Validate(); err != nil {
		return TrendResult{}, err
	}

	if len(values) == 0 {
		return TrendResult{Direction: TrendStable}, nil
	}

	reg := RegressSeries(values)
	summary := ComputeSeriesStats(values)
	smoothed, err := MovingAverage(values, t.MovingAverageWindow)
	if err != nil {
		return TrendResult{}, err
	}

	return TrendResult{
		Regression:    reg,
		CurrentValue:  values[len(values)-1],
		AverageValue:  summary.Mean,
		Volatility:    summary.Volatility(),
		MovingAverage: smoothed,
		Direction:     ClassifyTrend(reg.Slope, t.SlopeThreshold),
		Samples:       len(values),
	}, nil
}

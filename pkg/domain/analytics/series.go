package analytics

import (
	"github.com/montanaflynn/stats"
)

// SeriesStats holds the statistical summary of one metric series.
type SeriesStats struct {
	Mean    float64 `json:"mean" yaml:"mean"`
	Median  float64 `json:"median" yaml:"median"`
	StdDev  float64 `json:"std_dev" yaml:"std_dev"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Samples int     `json:"samples" yaml:"samples"`
}

// ComputeSeriesStats summarizes the series. An empty series yields the
// zero summary. The standard deviation is the population form.
func ComputeSeriesStats(values []float64) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdDev, _ := stats.StandardDeviationPopulation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	return SeriesStats{
		Mean:    mean,
		Median:  median,
		StdDev:  stdDev,
		Min:     min,
		Max:     max,
		Samples: len(values),
	}
}

// Volatility returns the coefficient of variation (StdDev/Mean),
// or 0 when the mean is 0.
func (s SeriesStats) Volatility() float64 {
	if s.Mean == 0 {
		return 0
	}
	return s.StdDev / s.Mean
}

// MovingAverage smooths the series over a sliding window. Until the
// window fills, each output averages the available prefix, so a window
// of 1 reproduces the series and a window at least as long as the series
// yields cumulative averages. One output is produced per input.
func MovingAverage(values []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrInvalidWindow
	}

	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out, nil
}

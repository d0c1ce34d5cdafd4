package analytics

import (
	"github.com/montanaflynn/stats"
)

// minAnomalySamples is the smallest series that supports z-score detection.
const minAnomalySamples = 3

// SeriesPoint is one identified observation in a metric series.
type SeriesPoint struct {
	SampleID string
	Value    float64
}

// Deviation indicates which side of the mean an anomaly falls on.
type Deviation string

const (
	// DeviationHigh marks a value above the mean.
	DeviationHigh Deviation = "high"
	// DeviationLow marks a value below the mean.
	DeviationLow Deviation = "low"
)

// AnomalyResult flags a sample whose z-score exceeds the detection threshold.
type AnomalyResult struct {
	SampleID  string    `json:"sample_id" yaml:"sample_id"`
	Value     float64   `json:"value" yaml:"value"`
	ZScore    float64   `json:"z_score" yaml:"z_score"`
	Deviation Deviation `json:"deviation" yaml:"deviation"`
}

// DetectAnomalies returns the points whose absolute z-score exceeds the
// threshold. Fewer than three points or a zero standard deviation is
// insufficient data and yields an empty result, not an error.
func DetectAnomalies(points []SeriesPoint, threshold float64) ([]AnomalyResult, error) {
	if threshold <= 0 {
		return nil, ErrInvalidZScoreThreshold
	}
	if len(points) < minAnomalySamples {
		return nil, nil
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}

	mean, _ := stats.Mean(values)
	stdDev, _ := stats.StandardDeviationPopulation(values)
	if stdDev == 0 {
		return nil, nil
	}

	var anomalies []AnomalyResult
	for _, p := range points {
		z := (p.Value - mean) / stdDev
		switch {
		case z > threshold:
			anomalies = append(anomalies, AnomalyResult{
				SampleID:  p.SampleID,
				Value:     p.Value,
				ZScore:    z,
				Deviation: DeviationHigh,
			})
		case z < -threshold:
			anomalies = append(anomalies, AnomalyResult{
				SampleID:  p.SampleID,
				Value:     p.Value,
				ZScore:    z,
				Deviation: DeviationLow,
			})
		}
	}
	return anomalies, nil
}

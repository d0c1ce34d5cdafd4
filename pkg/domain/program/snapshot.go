package program

import (
	"time"

	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
)

// Snapshot is one immutable observation of program performance: the raw
// sample, its derived metrics, the trend label at recording time and the
// health classification. Snapshots are ordered by sample date and never
// mutated after creation.
type Snapshot struct {
	ID        string                   `json:"id" yaml:"id"`
	ProgramID string                   `json:"program_id" yaml:"program_id"`
	Sample    evm.MetricSample         `json:"sample" yaml:"sample"`
	Metrics   evm.Metrics              `json:"metrics" yaml:"metrics"`
	Trend     analytics.TrendDirection `json:"trend" yaml:"trend"`
	Health    HealthReport             `json:"health" yaml:"health"`
	CreatedAt time.Time                `json:"created_at" yaml:"created_at"`
}

// NewSnapshot derives metrics and health from the sample and seals them
// into a snapshot. The trend label is the direction of the CPI series up
// to and including this sample.
func NewSnapshot(id, programID string, sample evm.MetricSample, trend analytics.TrendDirection) (Snapshot, error) {
	if err := sample.Validate(); err != nil {
		return Snapshot{}, err
	}
	if !trend.IsValid() {
		trend = analytics.TrendStable
	}

	metrics := evm.Compute(sample)
	return Snapshot{
		ID:        id,
		ProgramID: programID,
		Sample:    sample,
		Metrics:   metrics,
		Trend:     trend,
		Health:    ClassifyHealth(metrics),
		CreatedAt: time.Now(),
	}, nil
}

// InWindow returns the snapshots whose sample dates fall inside the
// window. A zero bound leaves that side of the window open.
func InWindow(snapshots []Snapshot, from, to time.Time) []Snapshot {
	out := make([]Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if !from.IsZero() && s.Sample.Date.Before(from) {
			continue
		}
		if !to.IsZero() && s.Sample.Date.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// MetricSeries extracts one metric from ordered snapshots for series analysis.
func MetricSeries(snapshots []Snapshot, metric evm.Metric) ([]float64, error) {
	values := make([]float64, len(snapshots))
	for i, s := range snapshots {
		v, err := s.Metrics.Value(metric)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// SeriesPoints extracts identified (id, value) pairs for anomaly detection.
func SeriesPoints(snapshots []Snapshot, metric evm.Metric) ([]analytics.SeriesPoint, error) {
	points := make([]analytics.SeriesPoint, len(snapshots))
	for i, s := range snapshots {
		v, err := s.Metrics.Value(metric)
		if err != nil {
			return nil, err
		}
		points[i] = analytics.SeriesPoint{SampleID: s.ID, Value: v}
	}
	return points, nil
}

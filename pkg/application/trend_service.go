package application

import (
	"fmt"

	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

// TrendService analyzes how a metric evolved across the snapshot history.
type TrendService struct {
	repo       domain.WorkspaceRepository
	thresholds analytics.Thresholds
}

func NewTrendService(repo domain.WorkspaceRepository, thresholds analytics.Thresholds) *TrendService {
	return &TrendService{repo: repo, thresholds: thresholds}
}

// MetricTrend is the trend of one metric over the snapshot history.
type MetricTrend struct {
	Metric    evm.Metric            `json:"metric"`
	Snapshots int                   `json:"snapshots"`
	Result    analytics.TrendResult `json:"result"`
}

// AnalyzeMetric regresses the chosen metric over the snapshot history. It
// requires at least two snapshots; a shorter history is an explicit error
// rather than a degenerate result because the caller asked for a trend.
func (s *TrendService) AnalyzeMetric(metric evm.Metric, window int) (*MetricTrend, error) {
	snapshots, err := s.loadSnapshots()
	if err != nil {
		return nil, err
	}
	if len(snapshots) < 2 {
		return nil, ErrInsufficientSnapshots
	}

	series, err := program.MetricSeries(snapshots, metric)
	if err != nil {
		return nil, err
	}

	thresholds := s.thresholds
	if window > 0 {
		thresholds, err = analytics.NewThresholds(thresholds.SlopeThreshold, thresholds.ZScoreThreshold, window)
		if err != nil {
			return nil, err
		}
	}

	result, err := analytics.AnalyzeSeries(series, thresholds)
	if err != nil {
		return nil, err
	}

	return &MetricTrend{
		Metric:    metric,
		Snapshots: len(snapshots),
		Result:    result,
	}, nil
}

// SnapshotComparison is the metric movement between two snapshots.
type SnapshotComparison struct {
	BaselineID string      `json:"baseline_id"`
	CurrentID  string      `json:"current_id"`
	Baseline   evm.Metrics `json:"baseline"`
	Current    evm.Metrics `json:"current"`
	CPIDelta   float64     `json:"cpi_delta"`
	SPIDelta   float64     `json:"spi_delta"`
	CVDelta    float64     `json:"cv_delta"`
	SVDelta    float64     `json:"sv_delta"`
}

// CompareSnapshots diffs the metrics of two snapshots by id. Unknown ids
// surface as ErrSnapshotNotFound.
func (s *TrendService) CompareSnapshots(baselineID, currentID string) (*SnapshotComparison, error) {
	snapshots, err := s.loadSnapshots()
	if err != nil {
		return nil, err
	}

	baseline, err := findSnapshot(snapshots, baselineID)
	if err != nil {
		return nil, err
	}
	current, err := findSnapshot(snapshots, currentID)
	if err != nil {
		return nil, err
	}

	return &SnapshotComparison{
		BaselineID: baseline.ID,
		CurrentID:  current.ID,
		Baseline:   baseline.Metrics,
		Current:    current.Metrics,
		CPIDelta:   current.Metrics.CPI - baseline.Metrics.CPI,
		SPIDelta:   current.Metrics.SPI - baseline.Metrics.SPI,
		CVDelta:    current.Metrics.CostVariance - baseline.Metrics.CostVariance,
		SVDelta:    current.Metrics.ScheduleVariance - baseline.Metrics.ScheduleVariance,
	}, nil
}

func (s *TrendService) loadSnapshots() ([]program.Snapshot, error) {
	if !s.repo.IsInitialized() {
		return nil, ErrNotInitialized
	}
	return s.repo.LoadSnapshots()
}

func findSnapshot(snapshots []program.Snapshot, id string) (program.Snapshot, error) {
	for _, snap := range snapshots {
		if snap.ID == id {
			return snap, nil
		}
	}
	return program.Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
}

package application

import (
	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

// AnomalyService screens the snapshot history for statistical outliers.
type AnomalyService struct {
	repo       domain.WorkspaceRepository
	thresholds analytics.Thresholds
}

func NewAnomalyService(repo domain.WorkspaceRepository, thresholds analytics.Thresholds) *AnomalyService {
	return &AnomalyService{repo: repo, thresholds: thresholds}
}

// MetricAnomalies pairs a metric with its flagged snapshots.
type MetricAnomalies struct {
	Metric    evm.Metric                `json:"metric"`
	Threshold float64                   `json:"threshold"`
	Anomalies []analytics.AnomalyResult `json:"anomalies"`
}

// Detect flags snapshots whose value for the metric deviates beyond the
// configured z-score threshold. Histories that are too short or flat come
// back empty, not as an error.
func (s *AnomalyService) Detect(metric evm.Metric) (*MetricAnomalies, error) {
	if !s.repo.IsInitialized() {
		return nil, ErrNotInitialized
	}
	snapshots, err := s.repo.LoadSnapshots()
	if err != nil {
		return nil, err
	}

	points, err := program.SeriesPoints(snapshots, metric)
	if err != nil {
		return nil, err
	}

	anomalies, err := analytics.DetectAnomalies(points, s.thresholds.ZScoreThreshold)
	if err != nil {
		return nil, err
	}

	return &MetricAnomalies{
		Metric:    metric,
		Threshold: s.thresholds.ZScoreThreshold,
		Anomalies: anomalies,
	}, nil
}

// DetectAcross runs detection for several metrics at once, skipping none;
// metrics without anomalies appear with an empty list.
func (s *AnomalyService) DetectAcross(metrics []evm.Metric) ([]MetricAnomalies, error) {
	results := make([]MetricAnomalies, 0, len(metrics))
	for _, metric := range metrics {
		r, err := s.Detect(metric)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}

package application

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

// SnapshotService records metric samples and turns them into immutable
// snapshots of the program's performance.
type SnapshotService struct {
	repo       domain.WorkspaceRepository
	audit      domain.AuditLogger
	thresholds analytics.Thresholds
}

func NewSnapshotService(repo domain.WorkspaceRepository, audit domain.AuditLogger, thresholds analytics.Thresholds) *SnapshotService {
	return &SnapshotService{repo: repo, audit: audit, thresholds: thresholds}
}

// AddSample records one observation of planned value, earned value and
// actual cost. The budget at completion comes from the program baseline. A
// sample on an already-recorded date replaces the earlier one.
func (s *SnapshotService) AddSample(date time.Time, pv, ev, ac float64) (evm.MetricSample, error) {
	p, err := s.loadProgram()
	if err != nil {
		return evm.MetricSample{}, err
	}

	sample, err := evm.NewMetricSample(date, pv, ev, ac, p.BudgetAtCompletion)
	if err != nil {
		return evm.MetricSample{}, err
	}

	samples, err := s.repo.LoadSamples()
	if err != nil {
		return evm.MetricSample{}, err
	}

	replaced := false
	for i := range samples {
		if samples[i].Date.Equal(sample.Date) {
			samples[i] = sample
			replaced = true
			break
		}
	}
	if !replaced {
		samples = append(samples, sample)
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Date.Before(samples[j].Date)
	})

	if err := s.repo.SaveSamples(samples); err != nil {
		return evm.MetricSample{}, fmt.Errorf("failed to save samples: %w", err)
	}

	return sample, s.audit.Log("sample.add", domain.ActorHuman, map[string]interface{}{
		"date":     sample.Date.Format("2006-01-02"),
		"pv":       sample.PlannedValue,
		"ev":       sample.EarnedValue,
		"ac":       sample.ActualCost,
		"replaced": replaced,
	})
}

// ListSamples returns the recorded samples in date order.
func (s *SnapshotService) ListSamples() ([]evm.MetricSample, error) {
	if _, err := s.loadProgram(); err != nil {
		return nil, err
	}
	return s.repo.LoadSamples()
}

// Metrics computes the metric set of the latest sample.
func (s *SnapshotService) Metrics() (evm.Metrics, evm.MetricSample, error) {
	latest, err := s.latestSample()
	if err != nil {
		return evm.Metrics{}, evm.MetricSample{}, err
	}
	return evm.Compute(latest), latest, nil
}

// Health classifies the latest sample's metrics.
func (s *SnapshotService) Health() (program.HealthReport, error) {
	m, _, err := s.Metrics()
	if err != nil {
		return program.HealthReport{}, err
	}
	return program.ClassifyHealth(m), nil
}

// CreateSnapshot freezes the latest sample, its derived metrics and the
// trend of cost efficiency so far into the snapshot history.
func (s *SnapshotService) CreateSnapshot() (program.Snapshot, error) {
	p, err := s.loadProgram()
	if err != nil {
		return program.Snapshot{}, err
	}

	latest, err := s.latestSample()
	if err != nil {
		return program.Snapshot{}, err
	}

	snapshots, err := s.repo.LoadSnapshots()
	if err != nil {
		return program.Snapshot{}, err
	}

	direction, err := s.trendDirection(snapshots, evm.Compute(latest))
	if err != nil {
		return program.Snapshot{}, err
	}

	snapshot, err := program.NewSnapshot(uuid.New().String(), p.ID, latest, direction)
	if err != nil {
		return program.Snapshot{}, err
	}

	if err := s.repo.AppendSnapshot(snapshot); err != nil {
		return program.Snapshot{}, fmt.Errorf("failed to append snapshot: %w", err)
	}

	return snapshot, s.audit.Log("program.snapshot", domain.ActorHuman, map[string]interface{}{
		"snapshot_id": snapshot.ID,
		"date":        snapshot.Sample.Date.Format("2006-01-02"),
		"cpi":         snapshot.Metrics.CPI,
		"spi":         snapshot.Metrics.SPI,
		"health":      string(snapshot.Health.Status),
	})
}

// ListSnapshots returns the snapshot history in recording order.
func (s *SnapshotService) ListSnapshots() ([]program.Snapshot, error) {
	if _, err := s.loadProgram(); err != nil {
		return nil, err
	}
	return s.repo.LoadSnapshots()
}

// ListSnapshotsBetween returns the snapshots whose sample dates fall inside
// the given window. A zero bound leaves that side of the window open.
func (s *SnapshotService) ListSnapshotsBetween(from, to time.Time) ([]program.Snapshot, error) {
	snapshots, err := s.ListSnapshots()
	if err != nil {
		return nil, err
	}
	return program.InWindow(snapshots, from, to), nil
}

// GetSnapshot returns one snapshot by id.
func (s *SnapshotService) GetSnapshot(id string) (program.Snapshot, error) {
	snapshots, err := s.ListSnapshots()
	if err != nil {
		return program.Snapshot{}, err
	}
	for _, snap := range snapshots {
		if snap.ID == id {
			return snap, nil
		}
	}
	return program.Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
}

// trendDirection classifies the cost efficiency series extended by the
// candidate metrics. Fewer than two points read as stable.
func (s *SnapshotService) trendDirection(snapshots []program.Snapshot, m evm.Metrics) (analytics.TrendDirection, error) {
	series, err := program.MetricSeries(snapshots, evm.MetricCPI)
	if err != nil {
		return analytics.TrendStable, err
	}
	series = append(series, m.CPI)

	result, err := analytics.AnalyzeSeries(series, s.thresholds)
	if err != nil {
		return analytics.TrendStable, err
	}
	return result.Direction, nil
}

func (s *SnapshotService) loadProgram() (*program.Program, error) {
	if !s.repo.IsInitialized() {
		return nil, ErrNotInitialized
	}
	p, err := s.repo.LoadProgram()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProgram
	}
	return p, nil
}

func (s *SnapshotService) latestSample() (evm.MetricSample, error) {
	if !s.repo.IsInitialized() {
		return evm.MetricSample{}, ErrNotInitialized
	}
	samples, err := s.repo.LoadSamples()
	if err != nil {
		return evm.MetricSample{}, err
	}
	if len(samples) == 0 {
		return evm.MetricSample{}, ErrNoSamples
	}
	return samples[len(samples)-1], nil
}

package application_test

import (
	"errors"
	"math"
	"testing"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

func TestTrendService_AnalyzeMetric(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 1, 6), 100000, 80000, 100000)),
			snapshotOf(t, "s2", sampleOn(date(2025, 2, 3), 100000, 90000, 100000)),
			snapshotOf(t, "s3", sampleOn(date(2025, 3, 3), 100000, 100000, 100000)),
		},
	}
	service := application.NewTrendService(repo, analytics.DefaultThresholds())

	trend, err := service.AnalyzeMetric(evm.MetricCPI, 0)
	if err != nil {
		t.Fatal(err)
	}

	if trend.Snapshots != 3 {
		t.Errorf("Snapshots = %d, want 3", trend.Snapshots)
	}
	if trend.Result.Direction != analytics.TrendImproving {
		t.Errorf("Direction = %v, want improving", trend.Result.Direction)
	}
	// CPI series 0.80, 0.90, 1.00: slope 0.10 per snapshot, perfect fit.
	if math.Abs(trend.Result.Regression.Slope-0.10) > 1e-9 {
		t.Errorf("Slope = %v, want 0.10", trend.Result.Regression.Slope)
	}
	if math.Abs(trend.Result.Regression.RSquared-1.0) > 1e-9 {
		t.Errorf("RSquared = %v, want 1.0", trend.Result.Regression.RSquared)
	}
	if trend.Result.CurrentValue != 1.0 {
		t.Errorf("CurrentValue = %v, want 1.0", trend.Result.CurrentValue)
	}
}

func TestTrendService_AnalyzeMetric_InsufficientHistory(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 1, 6), 100000, 80000, 100000)),
		},
	}
	service := application.NewTrendService(repo, analytics.DefaultThresholds())

	_, err := service.AnalyzeMetric(evm.MetricCPI, 0)
	if !errors.Is(err, application.ErrInsufficientSnapshots) {
		t.Errorf("error = %v, want ErrInsufficientSnapshots", err)
	}
}

func TestTrendService_AnalyzeMetric_WindowOverride(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 1, 6), 100000, 80000, 100000)),
			snapshotOf(t, "s2", sampleOn(date(2025, 2, 3), 100000, 90000, 100000)),
			snapshotOf(t, "s3", sampleOn(date(2025, 3, 3), 100000, 100000, 100000)),
		},
	}
	service := application.NewTrendService(repo, analytics.DefaultThresholds())

	trend, err := service.AnalyzeMetric(evm.MetricCPI, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Window 2 over 0.80, 0.90, 1.00: averages 0.80, 0.85, 0.95.
	want := []float64{0.80, 0.85, 0.95}
	if len(trend.Result.MovingAverage) != len(want) {
		t.Fatalf("len(MovingAverage) = %d, want %d", len(trend.Result.MovingAverage), len(want))
	}
	for i, v := range want {
		if math.Abs(trend.Result.MovingAverage[i]-v) > 1e-9 {
			t.Errorf("MovingAverage[%d] = %v, want %v", i, trend.Result.MovingAverage[i], v)
		}
	}
}

func TestTrendService_AnalyzeMetric_NotInitialized(t *testing.T) {
	service := application.NewTrendService(&MockRepo{}, analytics.DefaultThresholds())

	_, err := service.AnalyzeMetric(evm.MetricCPI, 0)
	if !errors.Is(err, application.ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}

func TestTrendService_CompareSnapshots(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 1, 6), 100000, 80000, 100000)),
			snapshotOf(t, "s2", sampleOn(date(2025, 2, 3), 100000, 90000, 100000)),
		},
	}
	service := application.NewTrendService(repo, analytics.DefaultThresholds())

	cmp, err := service.CompareSnapshots("s1", "s2")
	if err != nil {
		t.Fatal(err)
	}

	if cmp.BaselineID != "s1" || cmp.CurrentID != "s2" {
		t.Errorf("ids = %q, %q, want s1, s2", cmp.BaselineID, cmp.CurrentID)
	}
	if math.Abs(cmp.CPIDelta-0.10) > 1e-9 {
		t.Errorf("CPIDelta = %v, want 0.10", cmp.CPIDelta)
	}
	// CV moves from -20000 to -10000.
	if math.Abs(cmp.CVDelta-10000) > 1e-9 {
		t.Errorf("CVDelta = %v, want 10000", cmp.CVDelta)
	}
}

func TestTrendService_CompareSnapshots_NotFound(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 1, 6), 100000, 80000, 100000)),
		},
	}
	service := application.NewTrendService(repo, analytics.DefaultThresholds())

	_, err := service.CompareSnapshots("s1", "missing")
	if !errors.Is(err, application.ErrSnapshotNotFound) {
		t.Errorf("error = %v, want ErrSnapshotNotFound", err)
	}
}

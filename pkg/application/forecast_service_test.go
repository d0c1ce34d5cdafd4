package application_test

import (
	"errors"
	"math"
	"testing"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain/forecast"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

func TestForecastService_GetForecast(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 6, 2), 80000, 64000, 80000)),
			snapshotOf(t, "s2", sampleOn(date(2025, 7, 1), 100000, 80000, 100000)),
		},
	}
	service := application.NewForecastService(repo)

	f, err := service.GetForecast(date(2025, 7, 1))
	if err != nil {
		t.Fatal(err)
	}

	// SPI 0.8 stretches the 100 remaining days to 125.
	if !f.EstimatedCompletion.Equal(date(2025, 11, 3)) {
		t.Errorf("EstimatedCompletion = %v, want 2025-11-03", f.EstimatedCompletion)
	}
	if f.ScheduleVarianceDays != 25 {
		t.Errorf("ScheduleVarianceDays = %d, want 25", f.ScheduleVarianceDays)
	}
	if math.Abs(f.EstimatedBudget-375000) > 1e-6 {
		t.Errorf("EstimatedBudget = %v, want 375000", f.EstimatedBudget)
	}
	if f.Method != forecast.MethodCPIBased {
		t.Errorf("Method = %v, want cpi_based", f.Method)
	}
	// Both snapshots carry CPI 0.80, so the history has no volatility.
	if f.Confidence != forecast.ConfidenceHigh {
		t.Errorf("Confidence = %v, want high", f.Confidence)
	}
	if len(f.Scenarios) != 3 {
		t.Errorf("len(Scenarios) = %d, want 3", len(f.Scenarios))
	}
}

func TestForecastService_GetForecast_NoSnapshots(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := application.NewForecastService(repo)

	_, err := service.GetForecast(date(2025, 7, 1))
	if !errors.Is(err, forecast.ErrNoSnapshots) {
		t.Errorf("error = %v, want ErrNoSnapshots", err)
	}
}

func TestForecastService_GetForecast_NotInitialized(t *testing.T) {
	service := application.NewForecastService(&MockRepo{})

	_, err := service.GetForecast(date(2025, 7, 1))
	if !errors.Is(err, application.ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}

func TestForecastService_RequiredEfficiency(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 7, 1), 100000, 80000, 100000)),
		},
	}
	service := application.NewForecastService(repo)

	// 200000 of budgeted work remains against 180000 of budget headroom.
	required, err := service.RequiredEfficiency(280000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(required-200000.0/180000.0) > 1e-9 {
		t.Errorf("required = %v, want %v", required, 200000.0/180000.0)
	}
}

func TestForecastService_RequiredEfficiency_InvalidTarget(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 7, 1), 100000, 80000, 100000)),
		},
	}
	service := application.NewForecastService(repo)

	if _, err := service.RequiredEfficiency(0); !errors.Is(err, application.ErrInvalidTarget) {
		t.Errorf("error = %v, want ErrInvalidTarget", err)
	}
	if _, err := service.RequiredEfficiency(-500); !errors.Is(err, application.ErrInvalidTarget) {
		t.Errorf("error = %v, want ErrInvalidTarget", err)
	}
}

func TestForecastService_RequiredEfficiency_TargetEqualsSpend(t *testing.T) {
	repo := &MockRepo{
		Initialized: true,
		Program:     testProgram(),
		Snapshots: []program.Snapshot{
			snapshotOf(t, "s1", sampleOn(date(2025, 7, 1), 100000, 80000, 100000)),
		},
	}
	service := application.NewForecastService(repo)

	required, err := service.RequiredEfficiency(100000)
	if err != nil {
		t.Fatal(err)
	}
	if required != 0 {
		t.Errorf("required = %v, want 0 when the target equals spend to date", required)
	}
}

package application_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
	"github.com/felixgeelhaar/paceline/pkg/domain/schedule"
)

type MockRepo struct {
	Program     *program.Program
	Samples     []evm.MetricSample
	Activities  []schedule.Activity
	Snapshots   []program.Snapshot
	Events      []domain.Event
	Usage       *domain.UsageStats
	Initialized bool
	SaveError   error
	LoadError   error
}

func (m *MockRepo) Initialize() error                            { m.Initialized = true; return nil }
func (m *MockRepo) IsInitialized() bool                          { return m.Initialized }
func (m *MockRepo) SaveProgram(p *program.Program) error         { m.Program = p; return m.SaveError }
func (m *MockRepo) LoadProgram() (*program.Program, error)       { return m.Program, m.LoadError }
func (m *MockRepo) SaveSamples(s []evm.MetricSample) error       { m.Samples = s; return m.SaveError }
func (m *MockRepo) LoadSamples() ([]evm.MetricSample, error)     { return m.Samples, m.LoadError }
func (m *MockRepo) SaveActivities(a []schedule.Activity) error   { m.Activities = a; return m.SaveError }
func (m *MockRepo) LoadActivities() ([]schedule.Activity, error) { return m.Activities, m.LoadError }
func (m *MockRepo) AppendSnapshot(s program.Snapshot) error {
	m.Snapshots = append(m.Snapshots, s)
	return m.SaveError
}
func (m *MockRepo) LoadSnapshots() ([]program.Snapshot, error) { return m.Snapshots, m.LoadError }
func (m *MockRepo) RecordEvent(e domain.Event) error {
	m.Events = append(m.Events, e)
	return m.SaveError
}
func (m *MockRepo) LoadEvents() ([]domain.Event, error)    { return m.Events, m.LoadError }
func (m *MockRepo) UpdateUsage(u domain.UsageStats) error  { m.Usage = &u; return m.SaveError }
func (m *MockRepo) LoadUsage() (*domain.UsageStats, error) { return m.Usage, m.LoadError }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testProgram() *program.Program {
	return &program.Program{
		ID:                 "apollo",
		Name:               "Apollo Migration",
		BudgetAtCompletion: 300000,
		Baseline: program.Baseline{
			Start:  date(2025, 1, 6),
			Finish: date(2025, 10, 9),
		},
	}
}

func snapshotOf(t *testing.T, id string, sample evm.MetricSample) program.Snapshot {
	t.Helper()
	snap, err := program.NewSnapshot(id, "apollo", sample, analytics.TrendStable)
	if err != nil {
		t.Fatal(err)
	}
	return snap
}

func sampleOn(day time.Time, pv, ev, ac float64) evm.MetricSample {
	return evm.MetricSample{
		Date:               day,
		PlannedValue:       pv,
		EarnedValue:        ev,
		ActualCost:         ac,
		BudgetAtCompletion: 300000,
	}
}

func lastEvent(t *testing.T, repo *MockRepo, action string) domain.Event {
	t.Helper()
	for i := len(repo.Events) - 1; i >= 0; i-- {
		if repo.Events[i].Action == action {
			return repo.Events[i]
		}
	}
	t.Fatalf("no %q event recorded", action)
	return domain.Event{}
}

package application

import (
	"time"

	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/forecast"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

// ForecastService projects the program's completion date and final cost
// from its snapshot history.
type ForecastService struct {
	repo domain.WorkspaceRepository
}

func NewForecastService(repo domain.WorkspaceRepository) *ForecastService {
	return &ForecastService{repo: repo}
}

// GetForecast projects cost and completion as of the given date. The
// latest snapshot supplies the metrics; the volatility of the cost
// efficiency history drives the confidence bucket.
func (s *ForecastService) GetForecast(asOf time.Time) (forecast.Forecast, error) {
	p, snapshots, err := s.loadHistory()
	if err != nil {
		return forecast.Forecast{}, err
	}

	latest := snapshots[len(snapshots)-1]

	cpiSeries, err := program.MetricSeries(snapshots, evm.MetricCPI)
	if err != nil {
		return forecast.Forecast{}, err
	}
	volatility := analytics.ComputeSeriesStats(cpiSeries).Volatility()

	return forecast.Generate(latest.Metrics, p.BudgetAtCompletion, p.Baseline.Finish, asOf, volatility)
}

// RequiredEfficiency returns the cost efficiency the remaining work must
// sustain to finish at the target cost.
func (s *ForecastService) RequiredEfficiency(target float64) (float64, error) {
	if target <= 0 {
		return 0, ErrInvalidTarget
	}

	p, snapshots, err := s.loadHistory()
	if err != nil {
		return 0, err
	}

	latest := snapshots[len(snapshots)-1]
	return forecast.RequiredCPI(p.BudgetAtCompletion, latest.Sample.ActualCost, target), nil
}

func (s *ForecastService) loadHistory() (*program.Program, []program.Snapshot, error) {
	if !s.repo.IsInitialized() {
		return nil, nil, ErrNotInitialized
	}
	p, err := s.repo.LoadProgram()
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrNoProgram
	}
	snapshots, err := s.repo.LoadSnapshots()
	if err != nil {
		return nil, nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil, forecast.ErrNoSnapshots
	}
	return p, snapshots, nil
}

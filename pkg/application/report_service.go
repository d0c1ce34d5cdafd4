package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/forecast"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

// ReportService assembles the full status picture of a program. The
// structured ProgramReport is the canonical result; the narrative is a
// formatting step layered on top of it, never the other way round.
type ReportService struct {
	repo       domain.WorkspaceRepository
	snapshots  *SnapshotService
	trends     *TrendService
	anomalies  *AnomalyService
	forecasts  *ForecastService
	scheduling *ScheduleService
}

func NewReportService(
	repo domain.WorkspaceRepository,
	snapshots *SnapshotService,
	trends *TrendService,
	anomalies *AnomalyService,
	forecasts *ForecastService,
	scheduling *ScheduleService,
) *ReportService {
	return &ReportService{
		repo:       repo,
		snapshots:  snapshots,
		trends:     trends,
		anomalies:  anomalies,
		forecasts:  forecasts,
		scheduling: scheduling,
	}
}

// ProgramReport is the combined status of a program at one point in time.
// Sections that lack the data they need stay nil rather than failing the
// whole report.
type ProgramReport struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Program     *program.Program      `json:"program"`
	Metrics     *evm.Metrics          `json:"metrics,omitempty"`
	Health      *program.HealthReport `json:"health,omitempty"`
	CostTrend   *MetricTrend          `json:"cost_trend,omitempty"`
	Schedule    *ScheduleSummary      `json:"schedule,omitempty"`
	Forecast    *forecast.Forecast    `json:"forecast,omitempty"`
	Anomalies   []MetricAnomalies     `json:"anomalies,omitempty"`
	Snapshots   int                   `json:"snapshots"`
}

// ScheduleSummary condenses the critical path result for reporting.
type ScheduleSummary struct {
	TotalDuration   int      `json:"total_duration"`
	CriticalPathIDs []string `json:"critical_path_ids"`
	Activities      int      `json:"activities"`
	Progress        float64  `json:"progress"`
}

// BuildReport gathers metrics, health, trend, anomalies, forecast and
// schedule into one structure. Optional sections degrade silently when
// their preconditions are not met; hard failures (uninitialized
// workspace, missing program) still propagate.
func (s *ReportService) BuildReport(asOf time.Time) (*ProgramReport, error) {
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

	report := &ProgramReport{
		GeneratedAt: asOf,
		Program:     p,
	}

	if m, _, err := s.snapshots.Metrics(); err == nil {
		report.Metrics = &m
		health := program.ClassifyHealth(m)
		report.Health = &health
	} else if !errors.Is(err, ErrNoSamples) {
		return nil, err
	}

	history, err := s.repo.LoadSnapshots()
	if err != nil {
		return nil, err
	}
	report.Snapshots = len(history)

	if trend, err := s.trends.AnalyzeMetric(evm.MetricCPI, 0); err == nil {
		report.CostTrend = trend
	} else if !errors.Is(err, ErrInsufficientSnapshots) {
		return nil, err
	}

	if found, err := s.anomalies.DetectAcross([]evm.Metric{evm.MetricCPI, evm.MetricSPI}); err == nil {
		for _, ma := range found {
			if len(ma.Anomalies) > 0 {
				report.Anomalies = append(report.Anomalies, ma)
			}
		}
	} else {
		return nil, err
	}

	if f, err := s.forecasts.GetForecast(asOf); err == nil {
		report.Forecast = &f
	} else if !errors.Is(err, forecast.ErrNoSnapshots) {
		return nil, err
	}

	if result, err := s.scheduling.ComputeSchedule(); err == nil {
		progress, err := s.scheduling.Progress()
		if err != nil {
			return nil, err
		}
		report.Schedule = &ScheduleSummary{
			TotalDuration:   result.TotalDuration,
			CriticalPathIDs: result.CriticalPathIDs,
			Activities:      len(result.Activities),
			Progress:        progress,
		}
	} else if !errors.Is(err, ErrNoActivities) {
		return nil, err
	}

	return report, nil
}

// Narrative renders the report as plain prose for humans. It only reads
// the structured report and adds no data of its own.
func (r *ProgramReport) Narrative() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Program %s (%s)\n", r.Program.Name, r.Program.ID)
	fmt.Fprintf(&b, "Budget at completion: %.2f\n", r.Program.BudgetAtCompletion)
	fmt.Fprintf(&b, "Baseline: %s to %s\n",
		r.Program.Baseline.Start.Format("2006-01-02"),
		r.Program.Baseline.Finish.Format("2006-01-02"))

	if r.Metrics == nil {
		b.WriteString("\nNo metric samples recorded yet.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\nPerformance: CPI %.2f, SPI %.2f, %.1f%% complete\n",
		r.Metrics.CPI, r.Metrics.SPI, r.Metrics.PercentComplete)
	fmt.Fprintf(&b, "Variances: cost %.2f, schedule %.2f\n",
		r.Metrics.CostVariance, r.Metrics.ScheduleVariance)

	if r.Health != nil {
		fmt.Fprintf(&b, "Health: %s (score %.0f)\n", r.Health.Status, r.Health.Score)
		for _, indicator := range r.Health.Indicators {
			fmt.Fprintf(&b, "  - %s\n", indicator)
		}
	}

	if r.CostTrend != nil {
		fmt.Fprintf(&b, "\nCost efficiency trend over %d snapshots: %s (slope %+.4f)\n",
			r.CostTrend.Snapshots, r.CostTrend.Result.Direction, r.CostTrend.Result.Regression.Slope)
	}

	for _, ma := range r.Anomalies {
		fmt.Fprintf(&b, "Anomalies in %s:\n", ma.Metric)
		for _, a := range ma.Anomalies {
			fmt.Fprintf(&b, "  - snapshot %s: value %.4f, z-score %+.2f (%s)\n",
				a.SampleID, a.Value, a.ZScore, a.Deviation)
		}
	}

	if r.Forecast != nil {
		fmt.Fprintf(&b, "\nForecast (%s confidence): completion %s, final cost %.2f\n",
			r.Forecast.Confidence,
			r.Forecast.EstimatedCompletion.Format("2006-01-02"),
			r.Forecast.EstimatedBudget)
		if r.Forecast.ScheduleVarianceDays != 0 {
			fmt.Fprintf(&b, "Schedule variance: %+d days against the baseline\n", r.Forecast.ScheduleVarianceDays)
		}
	}

	if r.Schedule != nil {
		fmt.Fprintf(&b, "\nSchedule: %d activities, %d days total, %.1f%% done\n",
			r.Schedule.Activities, r.Schedule.TotalDuration, r.Schedule.Progress)
		fmt.Fprintf(&b, "Critical path: %s\n", strings.Join(r.Schedule.CriticalPathIDs, " -> "))
	}

	return b.String()
}

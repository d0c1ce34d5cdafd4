package wiring

import (
	"fmt"

	"github.com/felixgeelhaar/paceline/internal/infrastructure/config"
	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
)

// AppServices exposes the application layer services wired together with a workspace.
type AppServices struct {
	Workspace  *Workspace
	Program    *application.ProgramService
	Snapshots  *application.SnapshotService
	Trends     *application.TrendService
	Anomalies  *application.AnomalyService
	Forecast   *application.ForecastService
	Schedule   *application.ScheduleService
	Reports    *application.ReportService
	Imports    *application.ImportService
	Audit      *application.AuditService // Concrete service for timeline and integrity reads
	Usage      *application.UsageService // Usage tracking service (separate from audit)
	Thresholds analytics.Thresholds
}

// BuildAppServices constructs the workbench of services for a workspace root.
// A broken or invalid analytics config is non-fatal: the services come back
// wired with the default thresholds and the error describes the fallback.
func BuildAppServices(root string) (*AppServices, error) {
	workspace := NewWorkspace(root)

	var loadErr error
	cfg, err := config.LoadAnalyticsConfig(root)
	if err != nil {
		loadErr = fmt.Errorf("analytics config fallback: %w", err)
		cfg = nil
	}
	thresholds, err := cfg.Thresholds()
	if err != nil {
		loadErr = fmt.Errorf("analytics config fallback: %w", err)
		thresholds = analytics.DefaultThresholds()
	}

	// Create services in dependency order
	snapshotSvc := application.NewSnapshotService(workspace.Repo, workspace.Audit, thresholds)
	trendSvc := application.NewTrendService(workspace.Repo, thresholds)
	anomalySvc := application.NewAnomalyService(workspace.Repo, thresholds)
	forecastSvc := application.NewForecastService(workspace.Repo)
	scheduleSvc := application.NewScheduleService(workspace.Repo, workspace.Audit)
	reportSvc := application.NewReportService(workspace.Repo, snapshotSvc, trendSvc, anomalySvc, forecastSvc, scheduleSvc)

	services := &AppServices{
		Workspace:  workspace,
		Program:    application.NewProgramService(workspace.Repo, workspace.Audit),
		Snapshots:  snapshotSvc,
		Trends:     trendSvc,
		Anomalies:  anomalySvc,
		Forecast:   forecastSvc,
		Schedule:   scheduleSvc,
		Reports:    reportSvc,
		Imports:    application.NewImportService(workspace.Repo, workspace.Audit, snapshotSvc),
		Audit:      workspace.Audit,
		Usage:      workspace.Usage,
		Thresholds: thresholds,
	}

	return services, loadErr
}

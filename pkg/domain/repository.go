package domain

import (
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
	"github.com/felixgeelhaar/paceline/pkg/domain/schedule"
)

// WorkspaceRepository handles the persistence of paceline artifacts in the
// .paceline/ directory. A workspace holds exactly one program together
// with its metric samples, activity network, snapshot history and audit
// trail.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveProgram(p *program.Program) error
	LoadProgram() (*program.Program, error)
	SaveSamples(samples []evm.MetricSample) error
	LoadSamples() ([]evm.MetricSample, error)
	SaveActivities(activities []schedule.Activity) error
	LoadActivities() ([]schedule.Activity, error)
	AppendSnapshot(snapshot program.Snapshot) error
	LoadSnapshots() ([]program.Snapshot, error)
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
	UpdateUsage(stats UsageStats) error
	LoadUsage() (*UsageStats, error)
}

package application

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

// ProgramService manages the single program a workspace tracks.
type ProgramService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
}

func NewProgramService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *ProgramService {
	return &ProgramService{repo: repo, audit: audit}
}

// InitWorkspace creates the .paceline directory and the program record.
func (s *ProgramService) InitWorkspace(id, name string, budgetAtCompletion float64, start, finish time.Time) (*program.Program, error) {
	programID, err := domain.NewProgramID(id)
	if err != nil {
		return nil, err
	}

	if s.repo.IsInitialized() {
		existing, err := s.repo.LoadProgram()
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrProgramExists
		}
	}

	if err := s.repo.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize workspace: %w", err)
	}

	baseline, err := program.NewBaseline(start, finish)
	if err != nil {
		return nil, err
	}

	p, err := program.NewProgram(programID.String(), name, budgetAtCompletion, baseline)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveProgram(p); err != nil {
		return nil, fmt.Errorf("failed to save program: %w", err)
	}

	return p, s.audit.Log("workspace.init", domain.ActorHuman, map[string]interface{}{
		"program_id": p.ID,
		"bac":        p.BudgetAtCompletion,
		"start":      p.Baseline.Start.Format("2006-01-02"),
		"finish":     p.Baseline.Finish.Format("2006-01-02"),
	})
}

// GetProgram returns the workspace's program.
func (s *ProgramService) GetProgram() (*program.Program, error) {
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

// Rebaseline replaces the program's schedule baseline. Recorded in the
// audit trail because it changes every later forecast.
func (s *ProgramService) Rebaseline(start, finish time.Time, actor string) (*program.Program, error) {
	p, err := s.GetProgram()
	if err != nil {
		return nil, err
	}

	baseline, err := program.NewBaseline(start, finish)
	if err != nil {
		return nil, err
	}

	p.Baseline = baseline
	p.UpdatedAt = time.Now()

	if err := s.repo.SaveProgram(p); err != nil {
		return nil, fmt.Errorf("failed to save program: %w", err)
	}

	return p, s.audit.Log("program.rebaseline", actor, map[string]interface{}{
		"program_id": p.ID,
		"start":      baseline.Start.Format("2006-01-02"),
		"finish":     baseline.Finish.Format("2006-01-02"),
	})
}

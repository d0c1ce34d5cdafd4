package application_test

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
)

func TestProgramService_InitWorkspace(t *testing.T) {
	repo := &MockRepo{}
	audit := application.NewAuditService(repo)
	service := application.NewProgramService(repo, audit)

	p, err := service.InitWorkspace("apollo", "Apollo Migration", 300000, date(2025, 1, 6), date(2025, 10, 9))
	if err != nil {
		t.Fatal(err)
	}

	if !repo.Initialized {
		t.Error("Expected workspace to be initialized")
	}
	if repo.Program == nil || repo.Program.ID != "apollo" {
		t.Error("Expected program to be saved")
	}
	if p.BudgetAtCompletion != 300000 {
		t.Errorf("BudgetAtCompletion = %v, want 300000", p.BudgetAtCompletion)
	}

	event := lastEvent(t, repo, "workspace.init")
	if event.Metadata["program_id"] != "apollo" {
		t.Errorf("audit program_id = %v, want apollo", event.Metadata["program_id"])
	}
}

func TestProgramService_InitWorkspace_AlreadyExists(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := application.NewProgramService(repo, application.NewAuditService(repo))

	_, err := service.InitWorkspace("apollo", "Apollo Migration", 300000, date(2025, 1, 6), date(2025, 10, 9))
	if !errors.Is(err, application.ErrProgramExists) {
		t.Errorf("error = %v, want ErrProgramExists", err)
	}
}

func TestProgramService_InitWorkspace_Validation(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		progName string
		budget   float64
		start    int
		finish   int
	}{
		{"invalid id", "9apollo", "Apollo", 300000, 6, 9},
		{"empty name", "apollo", "  ", 300000, 6, 9},
		{"zero budget", "apollo", "Apollo", 0, 6, 9},
		{"finish before start", "apollo", "Apollo", 300000, 9, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepo{}
			service := application.NewProgramService(repo, application.NewAuditService(repo))

			_, err := service.InitWorkspace(tt.id, tt.progName, tt.budget, date(2025, 1, tt.start), date(2025, 1, tt.finish))
			if err == nil {
				t.Error("Expected validation error")
			}
			if repo.Program != nil {
				t.Error("Expected no program to be saved")
			}
		})
	}
}

func TestProgramService_GetProgram(t *testing.T) {
	// 1. Uninitialized workspace
	repo := &MockRepo{}
	service := application.NewProgramService(repo, application.NewAuditService(repo))
	if _, err := service.GetProgram(); !errors.Is(err, application.ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}

	// 2. Initialized but no program
	repo.Initialized = true
	if _, err := service.GetProgram(); !errors.Is(err, application.ErrNoProgram) {
		t.Errorf("error = %v, want ErrNoProgram", err)
	}

	// 3. Program present
	repo.Program = testProgram()
	p, err := service.GetProgram()
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Apollo Migration" {
		t.Errorf("Name = %q, want Apollo Migration", p.Name)
	}
}

func TestProgramService_Rebaseline(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := application.NewProgramService(repo, application.NewAuditService(repo))

	p, err := service.Rebaseline(date(2025, 2, 3), date(2025, 12, 19), "pm")
	if err != nil {
		t.Fatal(err)
	}

	if !p.Baseline.Finish.Equal(date(2025, 12, 19)) {
		t.Errorf("Finish = %v, want 2025-12-19", p.Baseline.Finish)
	}
	if !repo.Program.Baseline.Start.Equal(date(2025, 2, 3)) {
		t.Error("Expected new baseline to be persisted")
	}

	event := lastEvent(t, repo, "program.rebaseline")
	if event.Actor != "pm" {
		t.Errorf("Actor = %q, want pm", event.Actor)
	}
}

func TestProgramService_Rebaseline_Invalid(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := application.NewProgramService(repo, application.NewAuditService(repo))

	_, err := service.Rebaseline(date(2025, 6, 1), date(2025, 6, 1), "pm")
	if !errors.Is(err, program.ErrInvalidBaseline) {
		t.Errorf("error = %v, want ErrInvalidBaseline", err)
	}
}

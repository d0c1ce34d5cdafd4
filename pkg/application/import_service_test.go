package application_test

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/schedule"
)

func newImportService(repo *MockRepo) *application.ImportService {
	audit := application.NewAuditService(repo)
	snapshots := application.NewSnapshotService(repo, audit, analytics.DefaultThresholds())
	return application.NewImportService(repo, audit, snapshots)
}

func TestImportService_ImportSamples(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := newImportService(repo)

	data := []byte(`[
		{"date": "2025-03-03", "pv": 100000, "ev": 95000, "ac": 100000},
		{"date": "2025-04-07", "pv": 130000, "ev": 120000, "ac": 125000}
	]`)

	result, err := service.ImportSamples(data)
	if err != nil {
		t.Fatal(err)
	}

	if result.Imported != 2 || result.Skipped != 0 {
		t.Errorf("Imported = %d, Skipped = %d, want 2 and 0", result.Imported, result.Skipped)
	}
	if len(repo.Samples) != 2 {
		t.Fatalf("len(Samples) = %d, want 2", len(repo.Samples))
	}
	if repo.Samples[0].BudgetAtCompletion != 300000 {
		t.Errorf("BudgetAtCompletion = %v, want 300000 from the program", repo.Samples[0].BudgetAtCompletion)
	}

	event := lastEvent(t, repo, "samples.import")
	if event.Metadata["imported"] != 2 {
		t.Errorf("audit imported = %v, want 2", event.Metadata["imported"])
	}
}

func TestImportService_ImportSamples_SchemaViolations(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := newImportService(repo)

	tests := []struct {
		name string
		data string
	}{
		{"missing earned value", `[{"date": "2025-03-03", "pv": 100000, "ac": 100000}]`},
		{"negative amount", `[{"date": "2025-03-03", "pv": -5, "ev": 0, "ac": 0}]`},
		{"not an array", `{"date": "2025-03-03", "pv": 1, "ev": 1, "ac": 1}`},
		{"not json", `pv,ev,ac`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.ImportSamples([]byte(tt.data)); err == nil {
				t.Error("Expected schema validation error")
			}
			if len(repo.Samples) != 0 {
				t.Error("Expected no samples to be written")
			}
		})
	}
}

func TestImportService_ImportSamples_NotInitialized(t *testing.T) {
	service := newImportService(&MockRepo{})

	_, err := service.ImportSamples([]byte(`[]`))
	if !errors.Is(err, application.ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}

func TestImportService_ImportActivities(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := newImportService(repo)

	data := []byte(`[
		{"id": "design", "name": "Design phase", "duration": 10},
		{"id": "build", "duration": 15, "depends_on": ["design"]},
		{"id": "test", "duration": 5, "depends_on": ["build"]}
	]`)

	result, err := service.ImportActivities(data)
	if err != nil {
		t.Fatal(err)
	}

	if result.Imported != 3 {
		t.Errorf("Imported = %d, want 3", result.Imported)
	}
	if len(repo.Activities) != 3 {
		t.Fatalf("len(Activities) = %d, want 3", len(repo.Activities))
	}
	// A name-less document falls back to the id.
	if repo.Activities[1].Name != "build" {
		t.Errorf("Name = %q, want build", repo.Activities[1].Name)
	}
	if repo.Activities[0].Status != schedule.StatusPending {
		t.Errorf("Status = %v, want pending", repo.Activities[0].Status)
	}
}

func TestImportService_ImportActivities_RejectsCycle(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := newImportService(repo)

	data := []byte(`[
		{"id": "a", "duration": 2, "depends_on": ["b"]},
		{"id": "b", "duration": 3, "depends_on": ["a"]}
	]`)

	_, err := service.ImportActivities(data)
	if !errors.Is(err, schedule.ErrCyclicDependency) {
		t.Errorf("error = %v, want ErrCyclicDependency", err)
	}
	if len(repo.Activities) != 0 {
		t.Error("Expected nothing persisted for a cyclic network")
	}
}

func TestImportService_ImportActivities_RejectsUnknownDependency(t *testing.T) {
	repo := &MockRepo{Initialized: true, Program: testProgram()}
	service := newImportService(repo)

	data := []byte(`[{"id": "a", "duration": 2, "depends_on": ["ghost"]}]`)

	_, err := service.ImportActivities(data)
	if !errors.Is(err, schedule.ErrUnknownDependency) {
		t.Errorf("error = %v, want ErrUnknownDependency", err)
	}
	if len(repo.Activities) != 0 {
		t.Error("Expected nothing persisted")
	}
}

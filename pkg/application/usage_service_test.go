package application_test

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain"
)

func TestUsageService_RecordCommand(t *testing.T) {
	repo := &MockRepo{}
	svc := application.NewUsageService(repo)

	for _, name := range []string{"metrics", "metrics", "forecast"} {
		if err := svc.RecordCommand(name); err != nil {
			t.Fatalf("record %s: %v", name, err)
		}
	}

	stats, err := svc.GetUsage()
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalCommands != 3 {
		t.Errorf("TotalCommands = %d, want 3", stats.TotalCommands)
	}
	if stats.CommandStats["metrics"] != 2 {
		t.Errorf("CommandStats[metrics] = %d, want 2", stats.CommandStats["metrics"])
	}
	if stats.CommandStats["forecast"] != 1 {
		t.Errorf("CommandStats[forecast] = %d, want 1", stats.CommandStats["forecast"])
	}
	if stats.LastCommandAt.IsZero() {
		t.Error("Expected LastCommandAt to be set")
	}
}

func TestUsageService_GetUsage_Empty(t *testing.T) {
	svc := application.NewUsageService(&MockRepo{})

	stats, err := svc.GetUsage()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalCommands != 0 {
		t.Errorf("TotalCommands = %d, want 0", stats.TotalCommands)
	}
	if stats.CommandStats == nil {
		t.Error("Expected a non-nil CommandStats map")
	}
}

func TestUsageService_RecordCommand_SaveError(t *testing.T) {
	repo := &MockRepo{SaveError: errors.New("disk full")}
	svc := application.NewUsageService(repo)

	if err := svc.RecordCommand("metrics"); err == nil {
		t.Error("Expected save error to propagate")
	}
}

func TestUsageService_RecordCommand_KeepsExistingStats(t *testing.T) {
	repo := &MockRepo{Usage: &domain.UsageStats{
		TotalCommands: 5,
		CommandStats:  map[string]int{"report": 5},
	}}
	svc := application.NewUsageService(repo)

	if err := svc.RecordCommand("report"); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.GetUsage()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalCommands != 6 {
		t.Errorf("TotalCommands = %d, want 6", stats.TotalCommands)
	}
	if stats.CommandStats["report"] != 6 {
		t.Errorf("CommandStats[report] = %d, want 6", stats.CommandStats["report"])
	}
}

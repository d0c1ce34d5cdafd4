package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestHappyPath(t *testing.T) {
	// Setup
	distDir, _ := filepath.Abs("../../dist")
	pacelineBin := filepath.Join(distDir, "paceline")
	if _, err := os.Stat(pacelineBin); err != nil {
		t.Skipf("paceline binary not built at %s", pacelineBin)
	}

	tempDir, err := os.MkdirTemp("", "paceline-e2e-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	// Helper to run paceline
	runPaceline := func(args ...string) string {
		cmd := exec.Command(pacelineBin, args...)
		cmd.Dir = tempDir
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("paceline %v failed: %v\nOutput: %s", args, err, output)
		}
		return string(output)
	}

	// 1. Init
	t.Log("Running paceline init...")
	out := runPaceline("init", "apollo", "--name", "Apollo Migration",
		"--budget", "300000", "--start", "2025-01-06", "--finish", "2025-10-09")
	if !strings.Contains(out, "Initialized paceline workspace") {
		t.Errorf("Unexpected init output: %s", out)
	}

	// Verify .paceline structure
	if _, err := os.Stat(filepath.Join(tempDir, ".paceline", "program.yaml")); os.IsNotExist(err) {
		t.Error(".paceline/program.yaml missing")
	}

	// 2. Record a metric history
	t.Log("Recording samples...")
	runPaceline("sample", "add", "--date", "2025-02-03", "--pv", "50000", "--ev", "40000", "--ac", "50000")
	runPaceline("snapshot", "create")
	runPaceline("sample", "add", "--date", "2025-03-03", "--pv", "100000", "--ev", "95000", "--ac", "100000")
	out = runPaceline("snapshot", "create")
	if !strings.Contains(out, "Created snapshot") {
		t.Errorf("Unexpected snapshot output: %s", out)
	}

	// 3. Metrics
	t.Log("Running paceline metrics...")
	out = runPaceline("metrics")
	if !strings.Contains(out, "CPI") || !strings.Contains(out, "EAC") {
		t.Errorf("Unexpected metrics output: %s", out)
	}

	// 4. Health
	out = runPaceline("health")
	if !strings.Contains(out, "Program Health") {
		t.Errorf("Unexpected health output: %s", out)
	}

	// 5. Trend and forecast
	out = runPaceline("trend")
	if !strings.Contains(out, "Direction") {
		t.Errorf("Unexpected trend output: %s", out)
	}
	out = runPaceline("forecast", "--as-of", "2025-03-03")
	if !strings.Contains(out, "Estimated completion") {
		t.Errorf("Unexpected forecast output: %s", out)
	}

	// 6. Activities and schedule
	t.Log("Building the activity network...")
	runPaceline("activity", "add", "design", "--duration", "10")
	runPaceline("activity", "add", "build", "--duration", "15", "--depends", "design")
	runPaceline("activity", "start", "design")
	out = runPaceline("schedule")
	if !strings.Contains(out, "Critical path") {
		t.Errorf("Unexpected schedule output: %s", out)
	}

	// 7. Report
	out = runPaceline("report")
	if len(strings.TrimSpace(out)) == 0 {
		t.Error("Expected a report narrative")
	}

	// 8. Audit chain stays verifiable after the whole run
	t.Log("Verifying the audit trail...")
	out = runPaceline("audit", "verify")
	if !strings.Contains(out, "intact") {
		t.Errorf("Unexpected audit output: %s", out)
	}
}

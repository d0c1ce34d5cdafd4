package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/paceline/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

func loadServices(root string) (*wiring.AppServices, error) {
	services, loadErr := wiring.BuildAppServices(root)
	if services == nil {
		return nil, fmt.Errorf("failed to build services: %w", loadErr)
	}
	if loadErr != nil {
		fmt.Printf("Warning: %v\n", loadErr)
	}
	return services, nil
}

func getProjectRoot() (string, error) {
	if projectPath != "" {
		abs, err := filepath.Abs(projectPath)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path %q: %w", projectPath, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("workspace path %q: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("workspace path %q is not a directory", abs)
		}
		return abs, nil
	}
	return os.Getwd()
}

func loadServicesForCurrentDir() (*wiring.AppServices, error) {
	root, err := getProjectRoot()
	if err != nil {
		return nil, err
	}
	return loadServices(root)
}

func commandActor() string {
	actor := os.Getenv("USER")
	if actor == "" {
		actor = "unknown-human"
	}
	return actor
}

// recordCommandUsage tracks the invocation in the workspace usage stats.
// Tracking must never break a command, so every failure is swallowed.
func recordCommandUsage(cmd *cobra.Command) {
	root, err := getProjectRoot()
	if err != nil {
		return
	}
	workspace := wiring.NewWorkspace(root)
	if !workspace.Repo.IsInitialized() {
		return
	}
	name := strings.TrimPrefix(cmd.CommandPath(), RootCmd.Name()+" ")
	_ = workspace.Usage.RecordCommand(name)
}

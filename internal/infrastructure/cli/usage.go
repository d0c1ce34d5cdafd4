package cli

import (
	"fmt"
	"sort"

	"github.com/felixgeelhaar/paceline/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show workspace usage statistics",
	RunE:  runUsage,
}

func runUsage(cmd *cobra.Command, args []string) error {
	root, err := getProjectRoot()
	if err != nil {
		return fmt.Errorf("resolve workspace path: %w", err)
	}
	workspace := wiring.NewWorkspace(root)

	stats, err := workspace.Usage.GetUsage()
	if err != nil {
		return fmt.Errorf("failed to load usage stats: %w", err)
	}

	fmt.Println("Workspace Usage")
	fmt.Println("-----------------")
	fmt.Printf("Total Commands: %d\n", stats.TotalCommands)
	if !stats.LastCommandAt.IsZero() {
		fmt.Printf("Last Activity:  %s\n", stats.LastCommandAt.Format("2006-01-02 15:04:05"))
	}

	if len(stats.CommandStats) > 0 {
		fmt.Println("\nCommands")

		// Sort keys for stable output
		keys := make([]string, 0, len(stats.CommandStats))
		for k := range stats.CommandStats {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Printf("- %-25s: %d\n", k, stats.CommandStats[k])
		}
	}

	// The cadence only covers weeks with snapshot activity; a low number
	// means the history has gaps a trend reader should know about.
	cadence, err := workspace.Audit.SnapshotCadence()
	if err == nil && cadence > 0 {
		fmt.Printf("\nSnapshot cadence: %.1f per week\n", cadence)
		if cadence < 1 {
			fmt.Println("Consider a weekly snapshot rhythm for reliable trends.")
		}
	}

	return nil
}

func init() {
	RootCmd.AddCommand(usageCmd)
}

package cli

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/paceline/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show a chronological view of workspace activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return fmt.Errorf("resolve workspace path: %w", err)
		}
		workspace := wiring.NewWorkspace(root)

		events, err := workspace.Audit.GetTimeline()
		if err != nil {
			return fmt.Errorf("failed to load timeline: %w", err)
		}

		fmt.Println("Workspace Timeline")
		fmt.Println("--------------------")
		for i := len(events) - 1; i >= 0; i-- {
			e := events[i]
			ts := e.Timestamp.Format(time.RFC822)
			fmt.Printf("[%s] %-15s | %-18s", ts, e.Actor, e.Action)
			if len(e.Metadata) > 0 {
				fmt.Printf(" (%v)", e.Metadata)
			}
			fmt.Println()
		}
		if len(events) == 0 {
			fmt.Println("  (no events)")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(timelineCmd)
}

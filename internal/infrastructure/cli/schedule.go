package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var scheduleJSON bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Compute the critical path over the activity network",
	RunE:  runSchedule,
}

func runSchedule(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	result, err := services.Schedule.ComputeSchedule()
	if err != nil {
		return MapError(fmt.Errorf("compute schedule: %w", err))
	}
	progress, err := services.Schedule.Progress()
	if err != nil {
		return MapError(fmt.Errorf("compute progress: %w", err))
	}

	if scheduleJSON {
		output := map[string]interface{}{
			"schedule": result,
			"progress": progress,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	fmt.Println("Critical Path Schedule")
	fmt.Println("------------------------")
	fmt.Printf("Total duration: %d days\n", result.TotalDuration)
	fmt.Printf("Progress:       %.1f%% of activities completed\n", progress)
	fmt.Printf("Critical path:  %s\n", strings.Join(result.CriticalPathIDs, " -> "))

	fmt.Printf("\n%-20s %4s %4s %4s %4s %4s %6s\n", "ID", "Dur", "ES", "EF", "LS", "LF", "Slack")
	for _, a := range result.Activities {
		marker := " "
		if a.Critical {
			marker = "*"
		}
		fmt.Printf("%-20s %4d %4d %4d %4d %4d %6d %s\n",
			a.ID, a.Duration, a.EarlyStart, a.EarlyFinish, a.LateStart, a.LateFinish, a.Slack, marker)
	}
	fmt.Println("\n* = on the critical path")
	return nil
}

func init() {
	scheduleCmd.Flags().BoolVar(&scheduleJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(scheduleCmd)
}

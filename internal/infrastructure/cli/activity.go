package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage schedule activities",
}

var (
	activityName     string
	activityDuration int
	activityDepends  []string
)

var activityAddCmd = &cobra.Command{
	Use:   "add <activity-id>",
	Short: "Add an activity to the schedule network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		activity, err := services.Schedule.AddActivity(args[0], activityName, activityDuration, activityDepends)
		if err != nil {
			return MapError(fmt.Errorf("failed to add activity: %w", err))
		}

		fmt.Printf("Added activity %s (%d days)\n", activity.ID, activity.Duration)
		if len(activity.DependsOn) > 0 {
			fmt.Printf("  depends on: %s\n", strings.Join(activity.DependsOn, ", "))
		}
		return nil
	},
}

var activityListJSON bool

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the schedule activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		activities, err := services.Schedule.ListActivities()
		if err != nil {
			return MapError(fmt.Errorf("load activities: %w", err))
		}

		if activityListJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(activities)
		}

		fmt.Printf("Activities (%d)\n", len(activities))
		fmt.Println("---------------")
		for _, a := range activities {
			fmt.Printf("  %-20s %-12s %3dd", a.ID, a.Status, a.Duration)
			if len(a.DependsOn) > 0 {
				fmt.Printf("  after %s", strings.Join(a.DependsOn, ", "))
			}
			fmt.Println()
		}
		if len(activities) == 0 {
			fmt.Println("  (none)")
		}
		return nil
	},
}

func newTransitionCommand(use, short, event string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <activity-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := loadServicesForCurrentDir()
			if err != nil {
				return err
			}

			activity, err := services.Schedule.TransitionActivity(args[0], event, commandActor())
			if err != nil {
				return MapError(fmt.Errorf("failed to %s activity: %w", event, err))
			}

			fmt.Printf("Activity %s is now %s.\n", activity.ID, activity.Status)
			return nil
		},
	}
}

func init() {
	activityAddCmd.Flags().StringVar(&activityName, "name", "", "Activity display name (defaults to the id)")
	activityAddCmd.Flags().IntVar(&activityDuration, "duration", 0, "Duration in days")
	activityAddCmd.Flags().StringSliceVar(&activityDepends, "depends", nil, "Activity ids this one depends on")
	activityListCmd.Flags().BoolVar(&activityListJSON, "json", false, "Output in JSON format")

	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(newTransitionCommand("start", "Start a pending activity", "start"))
	activityCmd.AddCommand(newTransitionCommand("complete", "Complete an in-progress activity", "complete"))
	activityCmd.AddCommand(newTransitionCommand("block", "Mark an activity as blocked", "block"))
	activityCmd.AddCommand(newTransitionCommand("unblock", "Return a blocked activity to pending", "unblock"))
	activityCmd.AddCommand(newTransitionCommand("stop", "Return an in-progress activity to pending", "stop"))
	activityCmd.AddCommand(newTransitionCommand("reopen", "Reopen a completed activity", "reopen"))
	RootCmd.AddCommand(activityCmd)
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Inspect and adjust the program baseline",
}

var programShowJSON bool

var programShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the program definition and baseline",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		p, err := services.Program.GetProgram()
		if err != nil {
			return MapError(fmt.Errorf("load program: %w", err))
		}

		if programShowJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		fmt.Printf("Program: %s (%s)\n", p.Name, p.ID)
		fmt.Printf("Budget at completion: %.2f\n", p.BudgetAtCompletion)
		fmt.Printf("Baseline: %s to %s (%d days)\n",
			p.Baseline.Start.Format("2006-01-02"),
			p.Baseline.Finish.Format("2006-01-02"),
			p.Baseline.PlannedDays())
		return nil
	},
}

var (
	rebaselineStart  string
	rebaselineFinish string
)

var programRebaselineCmd = &cobra.Command{
	Use:   "rebaseline",
	Short: "Replace the program baseline dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		start, err := time.Parse("2006-01-02", rebaselineStart)
		if err != nil {
			return fmt.Errorf("invalid --start date %q: %w", rebaselineStart, err)
		}
		finish, err := time.Parse("2006-01-02", rebaselineFinish)
		if err != nil {
			return fmt.Errorf("invalid --finish date %q: %w", rebaselineFinish, err)
		}

		p, err := services.Program.Rebaseline(start, finish, commandActor())
		if err != nil {
			return MapError(fmt.Errorf("rebaseline failed: %w", err))
		}

		fmt.Printf("Baseline updated: %s to %s\n",
			p.Baseline.Start.Format("2006-01-02"), p.Baseline.Finish.Format("2006-01-02"))
		return nil
	},
}

func init() {
	programShowCmd.Flags().BoolVar(&programShowJSON, "json", false, "Output in JSON format")
	programRebaselineCmd.Flags().StringVar(&rebaselineStart, "start", "", "New baseline start date (YYYY-MM-DD)")
	programRebaselineCmd.Flags().StringVar(&rebaselineFinish, "finish", "", "New baseline finish date (YYYY-MM-DD)")
	_ = programRebaselineCmd.MarkFlagRequired("start")
	_ = programRebaselineCmd.MarkFlagRequired("finish")
	programCmd.AddCommand(programShowCmd)
	programCmd.AddCommand(programRebaselineCmd)
	RootCmd.AddCommand(programCmd)
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Record and list metric samples",
}

var (
	sampleDate string
	samplePV   float64
	sampleEV   float64
	sampleAC   float64
)

var sampleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a metric sample (planned value, earned value, actual cost)",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		date, err := time.Parse("2006-01-02", sampleDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", sampleDate, err)
		}

		sample, err := services.Snapshots.AddSample(date, samplePV, sampleEV, sampleAC)
		if err != nil {
			return MapError(fmt.Errorf("failed to record sample: %w", err))
		}

		fmt.Printf("Recorded sample for %s\n", sample.Date.Format("2006-01-02"))
		fmt.Printf("  PV %.2f  EV %.2f  AC %.2f\n",
			sample.PlannedValue, sample.EarnedValue, sample.ActualCost)
		return nil
	},
}

var sampleListJSON bool

var sampleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the recorded metric samples in date order",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		samples, err := services.Snapshots.ListSamples()
		if err != nil {
			return MapError(fmt.Errorf("load samples: %w", err))
		}

		if sampleListJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(samples)
		}

		fmt.Printf("Metric Samples (%d)\n", len(samples))
		fmt.Println("--------------------")
		for _, s := range samples {
			fmt.Printf("  %s  PV %12.2f  EV %12.2f  AC %12.2f\n",
				s.Date.Format("2006-01-02"), s.PlannedValue, s.EarnedValue, s.ActualCost)
		}
		if len(samples) == 0 {
			fmt.Println("  (none)")
		}
		return nil
	},
}

func init() {
	sampleAddCmd.Flags().StringVar(&sampleDate, "date", time.Now().Format("2006-01-02"), "Sample date (YYYY-MM-DD)")
	sampleAddCmd.Flags().Float64Var(&samplePV, "pv", 0, "Planned value to date")
	sampleAddCmd.Flags().Float64Var(&sampleEV, "ev", 0, "Earned value to date")
	sampleAddCmd.Flags().Float64Var(&sampleAC, "ac", 0, "Actual cost to date")
	sampleListCmd.Flags().BoolVar(&sampleListJSON, "json", false, "Output in JSON format")
	sampleCmd.AddCommand(sampleAddCmd)
	sampleCmd.AddCommand(sampleListCmd)
	RootCmd.AddCommand(sampleCmd)
}

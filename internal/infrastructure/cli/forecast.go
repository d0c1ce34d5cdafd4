package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/felixgeelhaar/paceline/pkg/domain/forecast"
	"github.com/spf13/cobra"
)

var (
	forecastAsOf   string
	forecastTarget float64
	forecastJSON   bool
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project the completion date and final cost of the program",
	Long: `Forecast projects completion from the latest snapshot's performance.

Flags:
  --as-of    Projection date (YYYY-MM-DD, defaults to today)
  --target   Also show the cost efficiency required to land at this cost
  --json     Output in JSON format`,
	RunE: runForecast,
}

func runForecast(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	asOf := time.Now()
	if forecastAsOf != "" {
		asOf, err = time.Parse("2006-01-02", forecastAsOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of date %q: %w", forecastAsOf, err)
		}
	}

	f, err := services.Forecast.GetForecast(asOf)
	if err != nil {
		return MapError(fmt.Errorf("get forecast: %w", err))
	}

	var requiredCPI float64
	if forecastTarget > 0 {
		requiredCPI, err = services.Forecast.RequiredEfficiency(forecastTarget)
		if err != nil {
			return MapError(fmt.Errorf("required efficiency: %w", err))
		}
	}

	if forecastJSON {
		return outputForecastJSON(f, requiredCPI)
	}
	return outputForecastText(f, requiredCPI)
}

func outputForecastText(f forecast.Forecast, requiredCPI float64) error {
	fmt.Printf("Program Forecast (as of %s)\n", f.AsOf.Format("2006-01-02"))
	fmt.Println("--------------------------------------")
	fmt.Printf("Planned completion:   %s\n", f.PlannedCompletion.Format("2006-01-02"))
	fmt.Printf("Estimated completion: %s (%+d days)\n",
		f.EstimatedCompletion.Format("2006-01-02"), f.ScheduleVarianceDays)
	fmt.Printf("Estimated budget:     %.2f\n", f.EstimatedBudget)
	fmt.Printf("Budget variance:      %.2f\n", f.BudgetVariance)
	fmt.Printf("Confidence:           %s (%s)\n", f.Confidence, f.Method)

	if len(f.Scenarios) > 0 {
		fmt.Println("\nScenarios:")
		for _, s := range f.Scenarios {
			fmt.Printf("  %-12s %14.2f  %s  p=%.2f\n",
				s.Name, s.Cost, s.Completion.Format("2006-01-02"), s.Probability)
		}
	}

	if requiredCPI > 0 {
		fmt.Printf("\nRequired CPI for target: %.3f\n", requiredCPI)
	}
	return nil
}

func outputForecastJSON(f forecast.Forecast, requiredCPI float64) error {
	output := map[string]interface{}{
		"forecast": f,
	}
	if requiredCPI > 0 {
		output["required_cpi"] = requiredCPI
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func init() {
	forecastCmd.Flags().StringVar(&forecastAsOf, "as-of", "", "Projection date (YYYY-MM-DD, defaults to today)")
	forecastCmd.Flags().Float64Var(&forecastTarget, "target", 0, "Target cost for required-efficiency analysis")
	forecastCmd.Flags().BoolVar(&forecastJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(forecastCmd)
}

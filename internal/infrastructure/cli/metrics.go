package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/spf13/cobra"
)

var metricsJSON bool

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show the earned-value metric set for the latest sample",
	RunE:  runMetrics,
}

func runMetrics(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	metrics, sample, err := services.Snapshots.Metrics()
	if err != nil {
		return MapError(fmt.Errorf("compute metrics: %w", err))
	}

	if metricsJSON {
		return outputMetricsJSON(metrics, sample)
	}
	return outputMetricsText(metrics, sample)
}

func outputMetricsText(m evm.Metrics, sample evm.MetricSample) error {
	fmt.Printf("Earned Value Metrics (as of %s)\n", sample.Date.Format("2006-01-02"))
	fmt.Println("---------------------------------------")
	fmt.Printf("Planned Value:        %14.2f\n", sample.PlannedValue)
	fmt.Printf("Earned Value:         %14.2f\n", sample.EarnedValue)
	fmt.Printf("Actual Cost:          %14.2f\n", sample.ActualCost)
	fmt.Printf("Budget at Completion: %14.2f\n", sample.BudgetAtCompletion)
	fmt.Println()
	fmt.Printf("Cost Variance:        %14.2f (%+.1f%%)\n", m.CostVariance, m.CostVariancePercent)
	fmt.Printf("Schedule Variance:    %14.2f (%+.1f%%)\n", m.ScheduleVariance, m.ScheduleVariancePercent)
	fmt.Printf("CPI:                  %14.3f\n", m.CPI)
	fmt.Printf("SPI:                  %14.3f\n", m.SPI)
	fmt.Printf("EAC:                  %14.2f\n", m.EstimateAtCompletion)
	fmt.Printf("ETC:                  %14.2f\n", m.EstimateToComplete)
	fmt.Printf("VAC:                  %14.2f\n", m.VarianceAtCompletion)
	fmt.Printf("TCPI:                 %14.3f\n", m.TCPI)
	fmt.Printf("Percent Complete:     %13.1f%%\n", m.PercentComplete)
	return nil
}

func outputMetricsJSON(m evm.Metrics, sample evm.MetricSample) error {
	output := map[string]interface{}{
		"as_of":   sample.Date.Format("2006-01-02"),
		"sample":  sample,
		"metrics": m,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(metricsCmd)
}

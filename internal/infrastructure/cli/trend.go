package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/spf13/cobra"
)

var (
	trendWindow int
	trendJSON   bool
)

var trendCmd = &cobra.Command{
	Use:   "trend [metric]",
	Short: "Analyze how a metric moves over the snapshot history",
	Long: `Analyze how a metric moves over the snapshot history.

The metric defaults to cpi. Valid selectors: cpi, spi, cv, sv, eac, tcpi,
percent_complete.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrend,
}

func runTrend(cmd *cobra.Command, args []string) error {
	metric := evm.MetricCPI
	if len(args) > 0 {
		metric = evm.Metric(args[0])
		if !metric.IsValid() {
			return fmt.Errorf("unknown metric %q (use cpi, spi, cv, sv, eac, tcpi, percent_complete)", args[0])
		}
	}

	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	report, err := services.Trends.AnalyzeMetric(metric, trendWindow)
	if err != nil {
		return MapError(fmt.Errorf("analyze trend: %w", err))
	}

	if trendJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return outputTrendText(report)
}

func outputTrendText(report *application.MetricTrend) error {
	r := report.Result

	fmt.Printf("Trend: %s over %d snapshots\n", report.Metric, report.Snapshots)
	fmt.Println("------------------------------")
	fmt.Printf("Direction:   %s\n", formatTrendDirection(r.Direction))
	fmt.Printf("Slope:       %+.4f per snapshot\n", r.Regression.Slope)
	fmt.Printf("R-squared:   %.3f\n", r.Regression.RSquared)
	fmt.Printf("Current:     %.3f\n", r.CurrentValue)
	fmt.Printf("Average:     %.3f\n", r.AverageValue)
	fmt.Printf("Volatility:  %.3f\n", r.Volatility)

	if len(r.MovingAverage) > 0 {
		values := make([]string, len(r.MovingAverage))
		for i, v := range r.MovingAverage {
			values[i] = fmt.Sprintf("%.3f", v)
		}
		fmt.Printf("Moving avg:  %s\n", strings.Join(values, " "))
	}
	return nil
}

func formatTrendDirection(d analytics.TrendDirection) string {
	switch d {
	case analytics.TrendImproving:
		return "improving"
	case analytics.TrendDeclining:
		return "declining"
	case analytics.TrendStable:
		return "stable"
	default:
		return string(d)
	}
}

func init() {
	trendCmd.Flags().IntVar(&trendWindow, "window", 0, "Moving average window (defaults to the configured window)")
	trendCmd.Flags().BoolVar(&trendJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(trendCmd)
}

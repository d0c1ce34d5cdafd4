package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/spf13/cobra"
)

var anomaliesJSON bool

var anomaliesCmd = &cobra.Command{
	Use:   "anomalies [metric]",
	Short: "Flag snapshots whose metric value deviates beyond the z-score threshold",
	Long: `Flag snapshots whose metric value deviates beyond the z-score threshold.

Without a metric argument both performance indices (cpi, spi) are scanned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnomalies,
}

func runAnomalies(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	var results []application.MetricAnomalies
	if len(args) > 0 {
		metric := evm.Metric(args[0])
		if !metric.IsValid() {
			return fmt.Errorf("unknown metric %q (use cpi, spi, cv, sv, eac, tcpi, percent_complete)", args[0])
		}
		result, err := services.Anomalies.Detect(metric)
		if err != nil {
			return MapError(fmt.Errorf("detect anomalies: %w", err))
		}
		results = []application.MetricAnomalies{*result}
	} else {
		results, err = services.Anomalies.DetectAcross([]evm.Metric{evm.MetricCPI, evm.MetricSPI})
		if err != nil {
			return MapError(fmt.Errorf("detect anomalies: %w", err))
		}
	}

	if anomaliesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Println("Anomaly Scan")
	fmt.Println("--------------")
	for _, r := range results {
		fmt.Printf("%s (threshold %.1f): ", r.Metric, r.Threshold)
		if len(r.Anomalies) == 0 {
			fmt.Println("no anomalies")
			continue
		}
		fmt.Printf("%d flagged\n", len(r.Anomalies))
		for _, a := range r.Anomalies {
			fmt.Printf("  snapshot %s: value %.3f, z-score %+.2f (%s)\n",
				a.SampleID, a.Value, a.ZScore, a.Deviation)
		}
	}
	return nil
}

func init() {
	anomaliesCmd.Flags().BoolVar(&anomaliesJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(anomaliesCmd)
}

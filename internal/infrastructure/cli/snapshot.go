package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Create and inspect performance snapshots",
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Seal the latest sample's metrics into an immutable snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		snapshot, err := services.Snapshots.CreateSnapshot()
		if err != nil {
			return MapError(fmt.Errorf("create snapshot: %w", err))
		}

		fmt.Printf("Created snapshot %s\n", snapshot.ID)
		fmt.Printf("  Date:   %s\n", snapshot.Sample.Date.Format("2006-01-02"))
		fmt.Printf("  CPI %.3f  SPI %.3f\n", snapshot.Metrics.CPI, snapshot.Metrics.SPI)
		fmt.Printf("  Health: %s (%.0f)\n", renderHealthStatus(snapshot.Health.Status), snapshot.Health.Score)
		fmt.Printf("  Trend:  %s\n", formatTrendDirection(snapshot.Trend))
		return nil
	},
}

var (
	snapshotListJSON bool
	snapshotListFrom string
	snapshotListTo   string
)

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the snapshot history in creation order",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		var from, to time.Time
		if snapshotListFrom != "" {
			from, err = time.Parse("2006-01-02", snapshotListFrom)
			if err != nil {
				return fmt.Errorf("invalid --from date %q: %w", snapshotListFrom, err)
			}
		}
		if snapshotListTo != "" {
			to, err = time.Parse("2006-01-02", snapshotListTo)
			if err != nil {
				return fmt.Errorf("invalid --to date %q: %w", snapshotListTo, err)
			}
		}

		snapshots, err := services.Snapshots.ListSnapshotsBetween(from, to)
		if err != nil {
			return MapError(fmt.Errorf("load snapshots: %w", err))
		}

		if snapshotListJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snapshots)
		}

		fmt.Printf("Snapshots (%d)\n", len(snapshots))
		fmt.Println("---------------")
		for _, s := range snapshots {
			fmt.Printf("  %-36s %s  CPI %.3f  SPI %.3f  %s\n",
				s.ID, s.Sample.Date.Format("2006-01-02"), s.Metrics.CPI, s.Metrics.SPI,
				renderHealthStatus(s.Health.Status))
		}
		if len(snapshots) == 0 {
			fmt.Println("  (none)")
		}
		return nil
	},
}

var snapshotCompareJSON bool

var snapshotCompareCmd = &cobra.Command{
	Use:   "compare <baseline-id> <current-id>",
	Short: "Diff the metrics of two snapshots",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		comparison, err := services.Trends.CompareSnapshots(args[0], args[1])
		if err != nil {
			return MapError(fmt.Errorf("compare snapshots: %w", err))
		}

		if snapshotCompareJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(comparison)
		}

		fmt.Printf("Snapshot Comparison: %s -> %s\n", comparison.BaselineID, comparison.CurrentID)
		fmt.Println("--------------------------------")
		fmt.Printf("CPI:  %.3f -> %.3f (%+.3f)\n", comparison.Baseline.CPI, comparison.Current.CPI, comparison.CPIDelta)
		fmt.Printf("SPI:  %.3f -> %.3f (%+.3f)\n", comparison.Baseline.SPI, comparison.Current.SPI, comparison.SPIDelta)
		fmt.Printf("CV:   %.2f -> %.2f (%+.2f)\n", comparison.Baseline.CostVariance, comparison.Current.CostVariance, comparison.CVDelta)
		fmt.Printf("SV:   %.2f -> %.2f (%+.2f)\n", comparison.Baseline.ScheduleVariance, comparison.Current.ScheduleVariance, comparison.SVDelta)
		return nil
	},
}

func init() {
	snapshotListCmd.Flags().BoolVar(&snapshotListJSON, "json", false, "Output in JSON format")
	snapshotListCmd.Flags().StringVar(&snapshotListFrom, "from", "", "Only snapshots sampled on or after this date (YYYY-MM-DD)")
	snapshotListCmd.Flags().StringVar(&snapshotListTo, "to", "", "Only snapshots sampled on or before this date (YYYY-MM-DD)")
	snapshotCompareCmd.Flags().BoolVar(&snapshotCompareJSON, "json", false, "Output in JSON format")
	snapshotCmd.AddCommand(snapshotCreateCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotCompareCmd)
	RootCmd.AddCommand(snapshotCmd)
}

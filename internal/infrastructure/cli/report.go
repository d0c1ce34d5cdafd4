package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	reportAsOf string
	reportJSON bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the full program status report",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	asOf := time.Now()
	if reportAsOf != "" {
		asOf, err = time.Parse("2006-01-02", reportAsOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of date %q: %w", reportAsOf, err)
		}
	}

	report, err := services.Reports.BuildReport(asOf)
	if err != nil {
		return MapError(fmt.Errorf("build report: %w", err))
	}

	if reportJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println(report.Narrative())
	return nil
}

func init() {
	reportCmd.Flags().StringVar(&reportAsOf, "as-of", "", "Report date (YYYY-MM-DD, defaults to today)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(reportCmd)
}

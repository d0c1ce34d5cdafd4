package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
	"github.com/spf13/cobra"
)

var healthStatusStyles = map[program.HealthStatus]lipgloss.Style{
	program.HealthHealthy:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	program.HealthWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	program.HealthCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

func renderHealthStatus(status program.HealthStatus) string {
	if style, ok := healthStatusStyles[status]; ok {
		return style.Render(string(status))
	}
	return string(status)
}

var healthJSON bool

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Classify program health from the latest metrics",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	report, err := services.Snapshots.Health()
	if err != nil {
		return MapError(fmt.Errorf("classify health: %w", err))
	}

	if healthJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println("Program Health")
	fmt.Println("----------------")
	fmt.Printf("Status: %s\n", renderHealthStatus(report.Status))
	fmt.Printf("Score:  %.0f / 100\n", report.Score)
	if len(report.Indicators) > 0 {
		fmt.Println("\nIndicators:")
		for _, ind := range report.Indicators {
			fmt.Printf("  - %s\n", ind)
		}
	}
	return nil
}

func init() {
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(healthCmd)
}

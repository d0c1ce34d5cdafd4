package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk import samples or activities from JSON",
}

var importSamplesCmd = &cobra.Command{
	Use:   "samples <file>",
	Short: "Import metric samples from a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		// #nosec G304 -- Path is chosen by the operator on the command line
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		result, err := services.Imports.ImportSamples(data)
		if err != nil {
			return MapError(fmt.Errorf("import samples: %w", err))
		}

		printImportResult("samples", result)
		return nil
	},
}

var importActivitiesCmd = &cobra.Command{
	Use:   "activities <file>",
	Short: "Import schedule activities from a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		// #nosec G304 -- Path is chosen by the operator on the command line
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		result, err := services.Imports.ImportActivities(data)
		if err != nil {
			return MapError(fmt.Errorf("import activities: %w", err))
		}

		printImportResult("activities", result)
		return nil
	},
}

func printImportResult(kind string, result *application.ImportResult) {
	fmt.Printf("Imported %d %s", result.Imported, kind)
	if result.Skipped > 0 {
		fmt.Printf(" (%d skipped)", result.Skipped)
	}
	fmt.Println()

	if len(result.Errors) > 0 {
		keys := make([]string, 0, len(result.Errors))
		for k := range result.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s: %s\n", k, result.Errors[k])
		}
	}
}

func init() {
	importCmd.AddCommand(importSamplesCmd)
	importCmd.AddCommand(importActivitiesCmd)
	RootCmd.AddCommand(importCmd)
}

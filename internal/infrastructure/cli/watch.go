package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/paceline/internal/infrastructure/watch"
	"github.com/felixgeelhaar/paceline/pkg/application"
	"github.com/felixgeelhaar/paceline/pkg/storage"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the workspace data files and re-render the report on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return fmt.Errorf("resolve workspace path: %w", err)
		}
		services, err := loadServices(root)
		if err != nil {
			return err
		}
		if !services.Workspace.Repo.IsInitialized() {
			return MapError(application.ErrNotInitialized)
		}

		render := func() {
			report, err := services.Reports.BuildReport(time.Now())
			if err != nil {
				fmt.Printf("report unavailable: %v\n", MapError(err))
				return
			}
			fmt.Println(report.Narrative())
		}

		fmt.Printf("Watching %s for data changes...\n", filepath.Join(root, storage.PacelineDir))
		render()

		if os.Getenv("PACELINE_WATCH_ONCE") == "true" {
			return nil
		}

		watcher, err := watch.NewDataWatcher(root, watchDebounce, func(e watch.ChangeEvent) {
			fmt.Printf("\n%s %s at %s\n", e.File, e.ChangeType, time.Now().Format("15:04:05"))
			render()
		})
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		return watcher.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period before re-rendering")
	RootCmd.AddCommand(watchCmd)
}

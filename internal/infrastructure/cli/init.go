package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	initName   string
	initBudget float64
	initStart  string
	initFinish string
)

var initCmd = &cobra.Command{
	Use:   "init <program-id>",
	Short: "Initialize a paceline workspace with its program baseline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return fmt.Errorf("resolve workspace path: %w", err)
		}
		services, err := loadServices(root)
		if err != nil {
			return err
		}

		start, err := time.Parse("2006-01-02", initStart)
		if err != nil {
			return fmt.Errorf("invalid --start date %q: %w", initStart, err)
		}
		finish, err := time.Parse("2006-01-02", initFinish)
		if err != nil {
			return fmt.Errorf("invalid --finish date %q: %w", initFinish, err)
		}

		name := initName
		if name == "" {
			name = args[0]
		}

		p, err := services.Program.InitWorkspace(args[0], name, initBudget, start, finish)
		if err != nil {
			return MapError(fmt.Errorf("failed to initialize workspace: %w", err))
		}

		fmt.Printf("Initialized paceline workspace for program: %s\n", p.Name)
		fmt.Printf("  Budget at completion: %.2f\n", p.BudgetAtCompletion)
		fmt.Printf("  Baseline: %s to %s\n",
			p.Baseline.Start.Format("2006-01-02"), p.Baseline.Finish.Format("2006-01-02"))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Program display name (defaults to the id)")
	initCmd.Flags().Float64Var(&initBudget, "budget", 0, "Budget at completion")
	initCmd.Flags().StringVar(&initStart, "start", "", "Baseline start date (YYYY-MM-DD)")
	initCmd.Flags().StringVar(&initFinish, "finish", "", "Baseline finish date (YYYY-MM-DD)")
	_ = initCmd.MarkFlagRequired("budget")
	_ = initCmd.MarkFlagRequired("start")
	_ = initCmd.MarkFlagRequired("finish")
	RootCmd.AddCommand(initCmd)
}

package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "paceline",
	Version: Version,
	Short:   "Earned-value analytics for program delivery",
	Long: `Paceline keeps the earned-value bookkeeping of a program and turns
it into answers:
1. How healthy is the delivery right now?
2. Which way is performance trending?
3. When will it finish, and at what cost?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "workspace", "", "Workspace root (defaults to the current directory)")
	RootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		recordCommandUsage(cmd)
	}
}

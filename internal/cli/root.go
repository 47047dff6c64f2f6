package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "automation",
	Short:   "Run survey automation scripts in parallel with randomized delays",
	Version: version,
	Long: `Automation orchestrates a set of standalone scripts: each script is
validated, repeated according to its configured count (or a trailing
-<N> filename suffix), and executed as a captured child process with a
random delay before every attempt. Scripts run in parallel through a
bounded worker pool and the run ends with a pass/fail summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(validateCmd)
}

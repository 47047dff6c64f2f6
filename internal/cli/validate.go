package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wintoo12/Automation/internal/config"
	"github.com/Wintoo12/Automation/internal/logging"
	"github.com/Wintoo12/Automation/internal/output"
	"github.com/Wintoo12/Automation/internal/script"
)

var validateCmd = &cobra.Command{
	Use:   "validate [script ...]",
	Short: "Check the configuration and every script without running anything",
	Long: `Validate loads the configuration, runs semantic validation, and checks
that every script exists, is a regular file and is readable. Nothing is
executed. Unlike run, validate exits non-zero when anything is wrong,
so it can gate a deployment.`,
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		noColor, _ := cmd.Flags().GetBool("no-color")

		cfg, err := resolveConfig(configFile, cmd.Flags().Changed("config"), args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if errors := config.ValidateConfig(cfg); len(errors) > 0 {
			fmt.Fprintln(os.Stderr, "Configuration validation errors:")
			for _, err := range errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", err.Error())
			}
			os.Exit(1)
		}

		formatter := output.NewFormatter(os.Stdout, noColor)

		invalid := 0
		for _, unit := range cfg.Units() {
			ok := script.Validate(unit.Path, logging.Nop())
			formatter.PrintValidation(unit.Path, ok)
			if !ok {
				invalid++
			}
		}

		if invalid > 0 {
			fmt.Fprintf(os.Stderr, "\n%d of %d scripts failed validation\n", invalid, len(cfg.Units()))
			os.Exit(1)
		}
		fmt.Printf("\nall %d scripts are valid\n", len(cfg.Units()))
	},
}

func init() {
	validateCmd.Flags().StringP("config", "c", defaultConfigFile, "Configuration file")
	validateCmd.Flags().Bool("no-color", false, "Disable colored output")
}

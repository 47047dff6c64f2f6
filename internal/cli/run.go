package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Wintoo12/Automation/internal/config"
	"github.com/Wintoo12/Automation/internal/logging"
	"github.com/Wintoo12/Automation/internal/metrics"
	"github.com/Wintoo12/Automation/internal/orchestrator"
	"github.com/Wintoo12/Automation/internal/output"
	"github.com/Wintoo12/Automation/internal/runner"
)

// defaultConfigFile is consulted when --config is not given.
const defaultConfigFile = "automation.yaml"

var runCmd = &cobra.Command{
	Use:   "run [script ...]",
	Short: "Execute the configured scripts through the worker pool",
	Long: `Run executes every configured script: each one is validated, repeated
according to its repeat count, and spawned as a captured child process
with a random delay before each attempt. Scripts run in parallel,
bounded by the worker pool size.

Scripts come from the config file, or from positional arguments which
take precedence when present. The process exits zero even when scripts
fail; the summary and the log file carry the outcome.`,
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		noColor, _ := cmd.Flags().GetBool("no-color")

		cfg, err := resolveConfig(configFile, cmd.Flags().Changed("config"), args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		applyFlagOverrides(cmd, cfg)

		if errors := config.ValidateConfig(cfg); len(errors) > 0 {
			fmt.Fprintln(os.Stderr, "Configuration validation errors:")
			for _, err := range errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", err.Error())
			}
			os.Exit(1)
		}

		logger, err := logging.New(logging.Options{
			FilePath:   cfg.Settings.Log.File,
			Level:      cfg.Settings.Log.Level,
			MaxSizeMB:  cfg.Settings.Log.MaxSizeMB,
			MaxBackups: cfg.Settings.Log.MaxBackups,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log sink: %v\n", err)
			os.Exit(1)
		}
		defer logger.Close()

		timeout, _ := cfg.Settings.TimeoutDuration()

		recorder := metrics.NewRecorder()
		unitRunner := runner.New(logger,
			runner.WithDelayBounds(cfg.Settings.MinDelay, cfg.Settings.MaxDelay),
			runner.WithTimeout(timeout),
			runner.WithRecorder(recorder),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		units := cfg.Units()
		logger.Info(fmt.Sprintf("running %d scripts with %d workers", len(units), cfg.Settings.Workers))

		o := orchestrator.New(cfg.Settings.Workers, unitRunner, logger)
		summary := o.Run(ctx, units)

		formatter := output.NewFormatter(os.Stdout, noColor)
		formatter.PrintSummary(summary, recorder.Snapshot())

		// The exit status deliberately stays zero on script failures;
		// consumers wanting a signal read the summary or the log.
	},
}

// resolveConfig decides where the unit list comes from: an explicit or
// discovered config file, or bare script paths from the command line.
func resolveConfig(configFile string, explicit bool, args []string) (*config.Config, error) {
	if !explicit {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			if len(args) == 0 {
				return nil, fmt.Errorf("no %s found and no scripts given", configFile)
			}
			cfg := config.Default()
			setScriptArgs(cfg, args)
			return cfg, nil
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		setScriptArgs(cfg, args)
	}
	return cfg, nil
}

func setScriptArgs(cfg *config.Config, args []string) {
	cfg.Scripts = cfg.Scripts[:0]
	for _, path := range args {
		cfg.Scripts = append(cfg.Scripts, config.ScriptConfig{Path: path})
	}
}

// applyFlagOverrides lets explicitly set flags win over config values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("workers") {
		cfg.Settings.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("min-delay") {
		cfg.Settings.MinDelay, _ = flags.GetFloat64("min-delay")
	}
	if flags.Changed("max-delay") {
		cfg.Settings.MaxDelay, _ = flags.GetFloat64("max-delay")
	}
	if flags.Changed("timeout") {
		d, _ := flags.GetDuration("timeout")
		cfg.Settings.Timeout = d.String()
	}
	if flags.Changed("interpreter") {
		cfg.Settings.Interpreter, _ = flags.GetString("interpreter")
	}
	if flags.Changed("log-file") {
		cfg.Settings.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Settings.Log.Level, _ = flags.GetString("log-level")
	}
}

func init() {
	runCmd.Flags().StringP("config", "c", defaultConfigFile, "Configuration file")
	runCmd.Flags().IntP("workers", "w", orchestrator.DefaultWorkers, "Worker pool size")
	runCmd.Flags().Float64("min-delay", runner.DefaultMinDelay, "Minimum pre-attempt delay in seconds")
	runCmd.Flags().Float64("max-delay", runner.DefaultMaxDelay, "Maximum pre-attempt delay in seconds")
	runCmd.Flags().DurationP("timeout", "t", 0*time.Second, "Per-attempt timeout (0 disables)")
	runCmd.Flags().StringP("interpreter", "i", "", "Interpreter used to execute scripts")
	runCmd.Flags().String("log-file", logging.DefaultFilePath, "Rotating log file path")
	runCmd.Flags().String("log-level", logging.LevelInfo, "Log level (DEBUG, INFO, WARN, ERROR)")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}

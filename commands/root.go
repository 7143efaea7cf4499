package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-earth-clock/internal/application/clock"
	"github.com/penwyp/go-earth-clock/internal/config"
	"github.com/penwyp/go-earth-clock/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Input and configuration
	inputPath  string
	configPath string

	// Clock span
	totalYears float64
	clockHours int

	// Output related
	outputFormat string
	colorMode    string

	rootCmd = &cobra.Command{
		Use:   "go-earth-clock [flags]",
		Short: "Place historical events on a 24-hour Earth clock",
		Long: `go-earth-clock maps the 4.6 billion year history of the Earth onto a single
24-hour clock and shows where each event falls, how long ago it was, and how
long ago it would be on the clock.

Without --input the built-in list of six events is shown. Event files may be
JSON, YAML, TOML or CSV with name and years_ago fields.

Examples:
  go-earth-clock                                # Show the built-in events
  go-earth-clock --input events.yaml            # Show events from a file
  go-earth-clock -i events.csv --output table   # Render as a table
  go-earth-clock --output json                  # Render as JSON
  go-earth-clock --total-years 13.8e9           # Map the age of the universe instead
  go-earth-clock watch -i events.json           # Re-render when the file changes`,
		SilenceUsage: true,
		RunE:         runRender,
	}
)

const (
	defaultLogFile = "~/.go-earth-clock/logs/app.log"
)

func init() {
	// Input configuration
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "",
		"Event file (json, yaml, toml, csv); empty uses the built-in events")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(),
		"Config file path")

	// Clock span
	rootCmd.PersistentFlags().Float64Var(&totalYears, "total-years", 0,
		"Years covered by one full clock cycle (default 4.6e9)")
	rootCmd.PersistentFlags().IntVar(&clockHours, "clock-hours", 0,
		"Length of the clock in hours (default 24)")

	// Output configuration
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "",
		"Output format (text, table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "",
		"Alias for --output")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "",
		"Color mode (auto, always, never)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaultLogFile,
		"Log file path")
}

func runRender(cmd *cobra.Command, args []string) error {
	runConfig, err := prepare(cmd)
	if err != nil {
		return err
	}

	runner, err := clock.NewRunner(runConfig)
	if err != nil {
		return err
	}
	return runner.Run(contextOrBackground(cmd))
}

func Execute() error {
	return rootCmd.Execute()
}

// prepare initializes logging, loads the config file and applies flag overrides
func prepare(cmd *cobra.Command) (*clock.RunConfig, error) {
	initLogging()

	path := ""
	if configPath != "" {
		path = expandPath(configPath)
	}
	result, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	for _, warning := range result.Warnings {
		util.LogWarn(warning)
	}

	cfg := result.Config
	applyFlagOverrides(cmd, &cfg)
	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	outFile, _ := out.(*os.File)

	runConfig := &clock.RunConfig{
		TotalYears:   cfg.Timeline.TotalYears,
		ClockHours:   cfg.Timeline.ClockHours,
		OutputFormat: cfg.Output.Format,
		Colored:      util.ShouldColor(cfg.Output.Color, outFile),
		Out:          out,
		Debounce:     time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
	}
	if inputPath != "" {
		runConfig.InputPath = expandPath(inputPath)
	}
	if outFile != nil && util.IsTerminal(outFile) {
		runConfig.MaxWidth = util.TerminalWidth(outFile)
		runConfig.ClearScreen = true
	}

	util.LogDebug("Run configuration",
		util.F("input", runConfig.InputPath),
		util.F("format", runConfig.OutputFormat),
		util.F("total_years", runConfig.TotalYears),
		util.F("clock_hours", runConfig.ClockHours))

	return runConfig, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("total-years") {
		cfg.Timeline.TotalYears = totalYears
	}
	if flags.Changed("clock-hours") {
		cfg.Timeline.ClockHours = clockHours
	}
	if flags.Changed("output") || flags.Changed("format") {
		cfg.Output.Format = outputFormat
	}
	if flags.Changed("color") {
		cfg.Output.Color = colorMode
	}
}

func initLogging() {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	path := ""
	if logFile != "" {
		path = expandPath(logFile)
		if err := ensureDir(filepath.Dir(path)); err != nil {
			path = ""
		}
	}
	util.InitLogger(logLevel, path, debug)
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

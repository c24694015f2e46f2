package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-uptime-chart/internal/analyzer"
	"github.com/penwyp/go-uptime-chart/internal/data/source"
	"github.com/penwyp/go-uptime-chart/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Input related
	sourceCommand string
	inputFile     string

	// Output related
	outputFormat string
	timezone     string
	noColor      bool

	rootCmd = &cobra.Command{
		Use:   "go-uptime-chart [flags]",
		Short: "Visualize when your machine was running",
		Long: `go-uptime-chart renders your machine's uptime history as terminal charts.

It parses the reboot records reported by last(1), merges the uptime intervals
and aggregates them into half-hour slots across the whole recorded history,
then prints a summary, a time-of-day histogram and per-month calendar charts.

Examples:
  go-uptime-chart                          # Charts from 'last -R -F reboot'
  go-uptime-chart --output json            # Machine-readable report
  go-uptime-chart --output summary         # Plain-text totals
  go-uptime-chart --input last-output.txt  # Replay captured last output
  go-uptime-chart watch                    # Redraw whenever wtmp changes`,
		RunE: runChart,
	}
)

const defaultLogFile = "~/.go-uptime-chart/logs/app.log"

func init() {
	// Input configuration
	rootCmd.PersistentFlags().StringVar(&sourceCommand, "source", source.DefaultCommand,
		"Log source command producing reboot records")
	rootCmd.PersistentFlags().StringVar(&inputFile, "input", "",
		"Read captured log source output from a file instead of running the command")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "chart",
		"Output format (chart, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone the log timestamps are interpreted in (e.g., UTC, Europe/Berlin)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colors and escape sequences even on a terminal")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runChart(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	config := &analyzer.Config{
		SourceCommand: sourceCommand,
		InputFile:     inputFile,
		OutputFormat:  outputFormat,
		NoColor:       noColor,
	}

	return analyzer.New(config).Run()
}

// initRuntime initializes logging and the time provider; shared by all
// commands.
func initRuntime() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)

	return util.InitializeTimeProvider(timezone)
}

func Execute() error {
	return rootCmd.Execute()
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

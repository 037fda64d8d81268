package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rangekit/internal/config"
	"github.com/joshuapare/rangekit/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	group      bool
	configPath string
	workers    int
	order      string

	// cfg is replaced by the loaded configuration before any command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "rangectl",
	Short: "Push integer ranges through chained remapping stages",
	Long: `rangectl reads an almanac of seeds and remapping stages and answers
questions about where values and whole ranges of values end up. Ranges are
split at rule boundaries, so results are exact without enumerating values.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&group, "group", false, "Print numbers with thousands separators")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Concurrent seed-range traversals (overrides config)")
	rootCmd.PersistentFlags().StringVar(&order, "order", "", "Worklist order: depth-first or breadth-first (overrides config)")
}

// setup loads configuration, applies flag overrides and starts the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("group") {
		loaded.Group = group
	}
	if flags.Changed("workers") {
		loaded.Workers = workers
	}
	if flags.Changed("order") {
		loaded.Order = order
	}
	switch {
	case verbose:
		loaded.LogLevel = "debug"
	case quiet:
		loaded.LogLevel = "error"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	return logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

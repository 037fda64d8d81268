package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rangekit/remap/printer"
)

func init() {
	rootCmd.AddCommand(newTraceCmd())
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <almanac> <value>",
		Short: "Show a value's image after each stage",
		Long: `The trace command follows a single value through the stages and
prints the category reached and the value after every stage.

Example:
  rangectl trace almanac.txt 79`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(args)
		},
	}
	return cmd
}

func runTrace(args []string) error {
	v, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}

	a, p, err := loadAlmanac(args[0])
	if err != nil {
		return err
	}

	categories := a.Categories()
	values := p.Trace(v)
	steps := make([]printer.TraceStep, len(values))
	for i, value := range values {
		name := fmt.Sprintf("stage %d", i)
		if i < len(categories) {
			name = categories[i]
		}
		steps[i] = printer.TraceStep{Category: name, Value: value}
	}
	return newPrinter().PrintTrace(steps)
}

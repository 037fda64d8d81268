package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rangekit/remap/span"
)

func init() {
	rootCmd.AddCommand(newMapCmd())
}

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <almanac> <start> [length]",
		Short: "Map one range through every stage",
		Long: `The map command pushes the range [start, start+length) through all
stages and prints the resulting ranges sorted by start. Length defaults to 1.

Example:
  rangectl map almanac.txt 79 14
  rangectl map almanac.txt 13 --json`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd.Context(), args)
		},
	}
	return cmd
}

func runMap(ctx context.Context, args []string) error {
	start, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid start %q: %w", args[1], err)
	}
	length := int64(1)
	if len(args) == 3 {
		length, err = strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[2], err)
		}
	}
	in, err := span.New(start, length)
	if err != nil {
		return err
	}

	_, p, err := loadAlmanac(args[0])
	if err != nil {
		return err
	}

	out, err := runRanges(ctx, p, []span.Range{in})
	if err != nil {
		return err
	}
	printVerbose("Mapped %s through %d stages\n", in, p.Len())
	return newPrinter().PrintRanges(out)
}

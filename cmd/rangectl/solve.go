package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rangekit/internal/almanac"
	"github.com/joshuapare/rangekit/remap/pipeline"
	"github.com/joshuapare/rangekit/remap/printer"
	"github.com/joshuapare/rangekit/remap/reduce"
)

// Part selects which answers solve reports.
type Part int

const (
	PartAll Part = iota
	PartOne
	PartTwo
)

func (p Part) String() string {
	switch p {
	case PartAll:
		return "all"
	case PartOne:
		return "1"
	case PartTwo:
		return "2"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// parsePart maps the --part flag to a Part.
func parsePart(s string) (Part, error) {
	switch s {
	case "", "all":
		return PartAll, nil
	case "1":
		return PartOne, nil
	case "2":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("invalid --part %q (want 1, 2 or all)", s)
	}
}

var solvePart string

func init() {
	cmd := newSolveCmd()
	cmd.Flags().StringVar(&solvePart, "part", "all", "Which answer to print: 1, 2 or all")
	rootCmd.AddCommand(cmd)
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <almanac>",
		Short: "Report the lowest final value for the seeds",
		Long: `The solve command maps the almanac's seeds through every stage.

Part 1 treats each seed as a single value. Part 2 reads the seeds as
(start, length) pairs and maps whole ranges.

Example:
  rangectl solve almanac.txt
  rangectl solve almanac.txt --part 2 --workers 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), args)
		},
	}
	return cmd
}

func runSolve(ctx context.Context, args []string) error {
	part, err := parsePart(solvePart)
	if err != nil {
		return err
	}

	a, p, err := loadAlmanac(args[0])
	if err != nil {
		return err
	}

	var answers []printer.Answer
	switch part {
	case PartAll:
		one, err := solvePartOne(a, p)
		if err != nil {
			return err
		}
		two, err := solvePartTwo(ctx, a, p)
		if err != nil {
			return err
		}
		answers = append(answers, one, two)
	case PartOne:
		one, err := solvePartOne(a, p)
		if err != nil {
			return err
		}
		answers = append(answers, one)
	case PartTwo:
		two, err := solvePartTwo(ctx, a, p)
		if err != nil {
			return err
		}
		answers = append(answers, two)
	default:
		panic(fmt.Sprintf("unhandled part %s", part))
	}

	return newPrinter().PrintAnswers(answers)
}

func solvePartOne(a *almanac.Almanac, p *pipeline.Pipeline) (printer.Answer, error) {
	lowest, err := reduce.MinValue(p.RunScalars(a.Seeds))
	if err != nil {
		return printer.Answer{}, fmt.Errorf("part 1: %w", err)
	}
	return printer.Answer{Name: "part1", Value: lowest}, nil
}

func solvePartTwo(ctx context.Context, a *almanac.Almanac, p *pipeline.Pipeline) (printer.Answer, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return printer.Answer{}, fmt.Errorf("part 2: %w", err)
	}
	out, err := runRanges(ctx, p, seeds)
	if err != nil {
		return printer.Answer{}, fmt.Errorf("part 2: %w", err)
	}
	printVerbose("Part 2: %d seed ranges became %d ranges\n", len(seeds), len(out))

	lowest, err := reduce.MinStart(out)
	if err != nil {
		return printer.Answer{}, fmt.Errorf("part 2: %w", err)
	}
	return printer.Answer{Name: "part2", Value: lowest}, nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/rangekit/remap/printer"
)

var stagesShowRules bool

func init() {
	cmd := newStagesCmd()
	cmd.Flags().BoolVar(&stagesShowRules, "rules", false, "List every rule of each stage")
	rootCmd.AddCommand(cmd)
}

func newStagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stages <almanac>",
		Short: "List the stages of an almanac",
		Long: `The stages command lists each stage with its category label and
rule count. Rules are printed sorted by source start.

Example:
  rangectl stages almanac.txt --rules`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStages(args)
		},
	}
	return cmd
}

func runStages(args []string) error {
	a, p, err := loadAlmanac(args[0])
	if err != nil {
		return err
	}
	printVerbose("Seeds: %d, Stages: %d\n", len(a.Seeds), p.Len())

	pr := newPrinter(func(o *printer.Options) { o.ShowRules = stagesShowRules })
	return pr.PrintStages(p.Stages())
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}

func runVersion() error {
	if jsonOut {
		return printJSON(map[string]string{
			"version": version,
			"commit":  commit,
			"date":    date,
		})
	}
	fmt.Printf("rangectl %s\n", version)
	fmt.Printf("  commit: %s\n", commit)
	fmt.Printf("  built: %s\n", date)
	return nil
}

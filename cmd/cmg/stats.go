package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cmg/internal/query"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show model cardinalities",
	Long: `Show the loaded model's cardinalities: artifact, dependency, and
flow counts.`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	m := mustLoadModel(cfg, logger)

	result, err := query.Execute(m.Schema, m.Instance, query.Query{Type: query.TypeStats})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing stats: %v\n", err)
		os.Exit(1)
	}

	printResult(result)
}

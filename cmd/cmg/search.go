package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cmg/internal/query"
)

var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Search artifacts by natural-language pattern",
	Long: `Search artifacts against a whitespace-tokenized pattern.

Each term scores one point per artifact whose path, type, kind, summary,
intent, tags, or exports contain it (case-insensitive substring). Results
are sorted by descending score, then path ascending.

Examples:
  cmg search "user authentication"
  cmg search database --format=yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	m := mustLoadModel(cfg, logger)

	result, err := query.Execute(m.Schema, m.Instance, query.Query{
		Type:   query.TypeSearch,
		Search: &query.SearchQuery{Pattern: args[0]},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	logger.Debug("Search query completed", map[string]interface{}{
		"pattern":  args[0],
		"duration": time.Since(start).Milliseconds(),
	})
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cmg/internal/query"
)

var depsDirection string

var depsCmd = &cobra.Command{
	Use:   "deps <artifact>",
	Short: "Look up dependency edges touching an artifact",
	Long: `Look up the dependency edges touching one artifact.

Edges are returned in model order. An artifact absent from the model is a
legitimate empty result, not an error.

Examples:
  cmg deps src/auth/login.ts
  cmg deps src/auth/login.ts --direction=inbound
  cmg deps src/auth/login.ts --direction=both`,
	Args: cobra.ExactArgs(1),
	Run:  runDeps,
}

func init() {
	depsCmd.Flags().StringVar(&depsDirection, "direction", "outbound",
		"Edge direction: inbound, outbound, or both")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	m := mustLoadModel(cfg, logger)

	result, err := query.Execute(m.Schema, m.Instance, query.Query{
		Type: query.TypeDeps,
		Deps: &query.DepsQuery{
			Artifact:  args[0],
			Direction: query.Direction(depsDirection),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying dependencies: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	logger.Debug("Deps query completed", map[string]interface{}{
		"artifact":  args[0],
		"direction": depsDirection,
		"duration":  time.Since(start).Milliseconds(),
	})
}

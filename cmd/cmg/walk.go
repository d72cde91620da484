package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cmg/internal/graph"
)

var (
	walkDirection string
	walkDepth     int
	walkLimit     int
)

var walkCmd = &cobra.Command{
	Use:   "walk <start>",
	Short: "Traverse the dependency graph breadth-first",
	Long: `Traverse the dependency graph breadth-first from a start artifact.

Each reached artifact is reported once, at its shortest-path depth; the
start artifact is excluded. Cyclic graphs terminate. A node limit truncates
in discovery order, so nearer artifacts win.

Examples:
  cmg walk src/index.ts
  cmg walk src/db/client.ts --direction=incoming --depth=2
  cmg walk src/index.ts --limit=50`,
	Args: cobra.ExactArgs(1),
	Run:  runWalk,
}

func init() {
	walkCmd.Flags().StringVar(&walkDirection, "direction", "outgoing",
		"Traversal direction: outgoing or incoming")
	walkCmd.Flags().IntVar(&walkDepth, "depth", 0,
		"Maximum traversal depth (default: from config)")
	walkCmd.Flags().IntVar(&walkLimit, "limit", 0,
		"Maximum total nodes, 0 for unbounded (default: from config)")
	rootCmd.AddCommand(walkCmd)
}

func runWalk(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	m := mustLoadModel(cfg, logger)

	depth := walkDepth
	if depth <= 0 {
		depth = cfg.Walk.MaxDepth
	}
	limit := walkLimit
	if limit <= 0 {
		limit = cfg.Walk.NodeLimit
	}

	result, err := graph.Walk(m.Instance, graph.WalkOptions{
		Start:     args[0],
		Direction: graph.Direction(walkDirection),
		MaxDepth:  depth,
		Limit:     limit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking graph: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	logger.Debug("Walk completed", map[string]interface{}{
		"start":     args[0],
		"direction": walkDirection,
		"nodes":     len(result.Nodes),
		"duration":  time.Since(start).Milliseconds(),
	})
}

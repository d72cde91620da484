package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cmg/internal/impact"
)

var impactDepth int

var impactCmd = &cobra.Command{
	Use:   "impact <target>",
	Short: "Analyze the blast radius of changing an artifact",
	Long: `Analyze which artifacts are affected when a target changes, by
walking reverse dependencies.

A target containing '*' is resolved as a glob over all artifact paths; the
affected set is the deduplicated union across all matches.

Examples:
  cmg impact src/db/client.ts
  cmg impact 'src/api/*' --depth=3`,
	Args: cobra.ExactArgs(1),
	Run:  runImpact,
}

func init() {
	impactCmd.Flags().IntVar(&impactDepth, "depth", 0,
		"Reverse-dependency walk depth (default: from config)")
	rootCmd.AddCommand(impactCmd)
}

func runImpact(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	m := mustLoadModel(cfg, logger)

	depth := impactDepth
	if depth <= 0 {
		depth = cfg.Impact.MaxDepth
	}

	result, err := impact.Analyze(m.Schema, m.Instance, impact.Options{
		Target: impact.Target{Name: args[0], Depth: depth},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing impact: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	logger.Debug("Impact analysis completed", map[string]interface{}{
		"target":   args[0],
		"targets":  len(result.TargetEntities),
		"affected": len(result.AffectedFiles),
		"duration": time.Since(start).Milliseconds(),
	})
}

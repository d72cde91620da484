package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cmg/internal/patterns"
)

var (
	patternsArea        string
	patternsFeatureType string
	patternsLayerTables string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns <category>",
	Short: "Discover codebase patterns",
	Long: `Discover patterns across the model's artifacts.

Categories:
  naming        filename and export naming conventions
  organization  directory grouping style
  modules       barrels, entry points, shared utilities
  architecture  heuristic layer classification
  similar       artifacts resembling a described feature (needs --feature-type)

Examples:
  cmg patterns naming
  cmg patterns organization --area='src/*'
  cmg patterns similar --feature-type='user service'
  cmg patterns architecture --layer-tables=layers.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runPatterns,
}

func init() {
	patternsCmd.Flags().StringVar(&patternsArea, "area", "",
		"Glob scoping the analysis to matching artifact paths")
	patternsCmd.Flags().StringVar(&patternsFeatureType, "feature-type", "",
		"Feature description for the similar category")
	patternsCmd.Flags().StringVar(&patternsLayerTables, "layer-tables", "",
		"TOML file overriding the architecture keyword tables (default: from config)")
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	m := mustLoadModel(cfg, logger)

	tablesPath := patternsLayerTables
	if tablesPath == "" {
		tablesPath = cfg.Patterns.LayerTablesPath
	}
	var tables patterns.LayerTables
	if tablesPath != "" {
		var err error
		tables, err = patterns.LoadLayerTables(tablesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading layer tables: %v\n", err)
			os.Exit(1)
		}
	}

	result, err := patterns.Discover(m.Schema, m.Instance, patterns.Options{
		Category:    patterns.Category(args[0]),
		Area:        patternsArea,
		FeatureType: patternsFeatureType,
		LayerTables: tables,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error discovering patterns: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	logger.Debug("Pattern discovery completed", map[string]interface{}{
		"category": args[0],
		"area":     patternsArea,
		"duration": time.Since(start).Milliseconds(),
	})
}

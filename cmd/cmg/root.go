package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cmg/internal/config"
	"cmg/internal/logging"
	"cmg/internal/model"
	"cmg/internal/output"
	"cmg/internal/version"
)

var (
	// dataFlag overrides the configured model data directory
	dataFlag string
	// formatFlag selects the result encoding on stdout
	formatFlag string
	// logFormatFlag and logLevelFlag override the configured logging
	logFormatFlag string
	logLevelFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "cmg",
	Short: "CMG - Code Model Graph Engine",
	Long: `CMG (Code Model Graph Engine) answers structural questions about a codebase
from a pre-built model: dependency lookups, graph traversal, change-impact
analysis, and pattern discovery. The model is loaded from schema.json and
instance.json; the engine never touches source code.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("CMG version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "",
		"Model data directory holding schema.json and instance.json (default: from config)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "json",
		"Result output format (json, yaml)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "",
		"Log format: human or json (default: from config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, error (default: from config)")
}

// mustLoadConfig loads .cmg/config.json from the working directory and
// applies CLI flag overrides on top. Precedence: flag > env > config file.
func mustLoadConfig() *config.Config {
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving working directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if dataFlag != "" {
		cfg.DataDir = dataFlag
	}
	if logFormatFlag != "" {
		cfg.Logging.Format = logFormatFlag
	}
	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}
	return cfg
}

func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}

// mustLoadModel loads the model or exits. Load failures are fatal for every
// command: there is no degraded mode over a partial model.
func mustLoadModel(cfg *config.Config, logger *logging.Logger) *model.Model {
	m, err := model.Load(cfg.DataDir)
	if err != nil {
		logger.Error("Model load failed", map[string]interface{}{
			"dataDir": cfg.DataDir,
			"error":   err.Error(),
		})
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("Model loaded", map[string]interface{}{
		"snapshotId":   m.SnapshotID,
		"artifacts":    len(m.Instance.Artifacts),
		"dependencies": len(m.Instance.Dependencies),
	})
	return m
}

// printResult encodes v on stdout in the requested format.
func printResult(v interface{}) {
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := output.Encode(os.Stdout, v, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}

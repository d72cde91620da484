// Package config loads engine configuration from .cmg/config.json with
// CMG_-prefixed environment overrides layered on top.
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete engine configuration.
type Config struct {
	// DataDir holds schema.json and instance.json.
	DataDir string `json:"dataDir" mapstructure:"dataDir"`

	Walk     WalkConfig     `json:"walk" mapstructure:"walk"`
	Impact   ImpactConfig   `json:"impact" mapstructure:"impact"`
	Patterns PatternsConfig `json:"patterns" mapstructure:"patterns"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// WalkConfig contains traversal defaults applied when a request leaves
// them unset.
type WalkConfig struct {
	MaxDepth  int `json:"maxDepth" mapstructure:"maxDepth"`
	NodeLimit int `json:"nodeLimit" mapstructure:"nodeLimit"`
}

// ImpactConfig contains change-impact analysis defaults.
type ImpactConfig struct {
	MaxDepth int `json:"maxDepth" mapstructure:"maxDepth"`
}

// PatternsConfig contains pattern discovery configuration.
type PatternsConfig struct {
	// LayerTablesPath points at a TOML file overriding the built-in
	// architecture keyword tables. Empty means built-ins.
	LayerTablesPath string `json:"layerTablesPath" mapstructure:"layerTablesPath"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir: ".",
		Walk: WalkConfig{
			MaxDepth:  3,
			NodeLimit: 0,
		},
		Impact: ImpactConfig{
			MaxDepth: 2,
		},
		Patterns: PatternsConfig{
			LayerTablesPath: "",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from workDir/.cmg/config.json. A missing file
// yields defaults; environment variables (CMG_LOGGING_LEVEL and friends)
// override either source.
func Load(workDir string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("dataDir", defaults.DataDir)
	v.SetDefault("walk.maxDepth", defaults.Walk.MaxDepth)
	v.SetDefault("walk.nodeLimit", defaults.Walk.NodeLimit)
	v.SetDefault("impact.maxDepth", defaults.Impact.MaxDepth)
	v.SetDefault("patterns.layerTablesPath", defaults.Patterns.LayerTablesPath)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(workDir, ".cmg"))

	v.SetEnvPrefix("CMG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return &ConfigError{Field: "dataDir", Message: "must not be empty"}
	}
	if c.Walk.MaxDepth < 0 {
		return &ConfigError{Field: "walk.maxDepth", Message: "must not be negative"}
	}
	if c.Walk.NodeLimit < 0 {
		return &ConfigError{Field: "walk.nodeLimit", Message: "must not be negative"}
	}
	if c.Impact.MaxDepth < 0 {
		return &ConfigError{Field: "impact.maxDepth", Message: "must not be negative"}
	}
	switch c.Logging.Format {
	case "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be human or json"}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

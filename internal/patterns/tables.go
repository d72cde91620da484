package patterns

import (
	"regexp"

	"github.com/BurntSushi/toml"

	"cmg/internal/errors"
)

// namingRule pairs a convention name with its recognizer. Rules are tried
// in fixed order; the first match wins, and names matching nothing fall
// through to ConventionOther.
type namingRule struct {
	convention string
	re         *regexp.Regexp
}

// Convention bucket names, in classification order.
const (
	ConventionCamel      = "camelCase"
	ConventionPascal     = "PascalCase"
	ConventionSnake      = "snake_case"
	ConventionKebab      = "kebab-case"
	ConventionUpperSnake = "UPPER_SNAKE"
	ConventionOther      = "other"
)

var namingRules = []namingRule{
	{ConventionCamel, regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)},
	{ConventionPascal, regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)},
	{ConventionSnake, regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)+$`)},
	{ConventionKebab, regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)+$`)},
	{ConventionUpperSnake, regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)},
}

// conventionOrder is the bucket order used for dominant-convention
// tie-breaks and stable reporting.
var conventionOrder = []string{
	ConventionCamel,
	ConventionPascal,
	ConventionSnake,
	ConventionKebab,
	ConventionUpperSnake,
	ConventionOther,
}

func classifyName(name string) string {
	for _, rule := range namingRules {
		if rule.re.MatchString(name) {
			return rule.convention
		}
	}
	return ConventionOther
}

// Architecture layer names, in classification order. unclassified is the
// fall-through bucket, never a keyword table.
const (
	LayerPresentation   = "presentation"
	LayerDomain         = "domain"
	LayerService        = "service"
	LayerInfrastructure = "infrastructure"
	LayerData           = "data"
	LayerTesting        = "testing"
	LayerUnclassified   = "unclassified"
)

var layerOrder = []string{
	LayerPresentation,
	LayerDomain,
	LayerService,
	LayerInfrastructure,
	LayerData,
	LayerTesting,
}

// LayerKeywords holds the keyword table for one architecture layer.
// Matching is case-insensitive substring against the artifact path first,
// then its kind, then its type.
type LayerKeywords struct {
	Path []string `toml:"path" json:"path"`
	Kind []string `toml:"kind" json:"kind"`
	Type []string `toml:"type" json:"type"`
}

// LayerTables maps layer name to its keyword table.
type LayerTables map[string]LayerKeywords

// DefaultLayerTables returns the built-in keyword tables.
func DefaultLayerTables() LayerTables {
	return LayerTables{
		LayerPresentation: {
			Path: []string{"ui/", "view", "component", "page", "screen", "renderer", "frontend"},
			Kind: []string{"component", "view", "page"},
			Type: []string{"component", "view"},
		},
		LayerDomain: {
			Path: []string{"domain", "model", "entity", "core/", "business"},
			Kind: []string{"model", "entity"},
			Type: []string{"model", "entity"},
		},
		LayerService: {
			Path: []string{"service", "controller", "handler", "api/", "route"},
			Kind: []string{"service", "controller", "handler"},
			Type: []string{"service", "controller"},
		},
		LayerInfrastructure: {
			Path: []string{"infra", "config", "util", "helper", "lib/", "tool", "script"},
			Kind: []string{"util", "config"},
			Type: []string{"util", "config"},
		},
		LayerData: {
			Path: []string{"data", "db/", "database", "repository", "store", "storage", "dao", "migration"},
			Kind: []string{"repository", "store"},
			Type: []string{"repository", "store"},
		},
		LayerTesting: {
			Path: []string{"test", "spec", "__tests__", "mock", "fixture"},
			Kind: []string{"test"},
			Type: []string{"test"},
		},
	}
}

// LoadLayerTables reads keyword-table overrides from a TOML file. Layers
// present in the file replace the built-in table for that layer; absent
// layers keep their defaults. Keeping the tables declarative makes the
// heuristics auditable and swappable without touching classifier code.
func LoadLayerTables(path string) (LayerTables, error) {
	overrides := LayerTables{}
	if _, err := toml.DecodeFile(path, &overrides); err != nil {
		return nil, errors.Wrap(errors.ModelLoadFailed, "failed to load layer tables", err)
	}

	tables := DefaultLayerTables()
	for layer, kw := range overrides {
		tables[layer] = kw
	}
	return tables, nil
}

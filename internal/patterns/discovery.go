// Package patterns implements codebase pattern discovery: naming
// conventions, directory organization, module structure, architectural
// layering, and similarity search. Each analysis is a pure function over
// the artifact set, using dependency edges for cross-cutting metrics.
package patterns

import (
	"sort"

	"cmg/internal/errors"
	"cmg/internal/globs"
	"cmg/internal/model"
)

// Category selects an analysis.
type Category string

const (
	// CategoryNaming classifies filename and export naming conventions
	CategoryNaming Category = "naming"
	// CategoryOrganization groups artifacts by top-level directory
	CategoryOrganization Category = "organization"
	// CategoryModules detects barrels, entrypoints, and shared utilities
	CategoryModules Category = "modules"
	// CategoryArchitecture classifies artifacts into heuristic layers
	CategoryArchitecture Category = "architecture"
	// CategorySimilar finds artifacts similar to a described feature
	CategorySimilar Category = "similar"
)

// Options parameterizes a discovery run. Area, when set, scopes every
// analysis to artifacts whose path matches the glob. FeatureType is
// required for CategorySimilar only.
type Options struct {
	Category    Category `json:"category"`
	Area        string   `json:"area,omitempty"`
	FeatureType string   `json:"featureType,omitempty"`
	// LayerTables overrides the built-in architecture keyword tables;
	// nil means defaults.
	LayerTables LayerTables `json:"-"`
}

// Result carries the outcome of one analysis, selected by Category.
type Result struct {
	Category     Category            `json:"category"`
	Naming       *NamingResult       `json:"naming,omitempty"`
	Organization *OrganizationResult `json:"organization,omitempty"`
	Modules      *ModulesResult      `json:"modules,omitempty"`
	Architecture *ArchitectureResult `json:"architecture,omitempty"`
	Similar      *SimilarResult      `json:"similar,omitempty"`
}

// Discover runs the requested analysis. An empty area scope is a valid
// empty result; an unknown category fails loudly.
func Discover(schema *model.Schema, instance *model.Instance, opts Options) (*Result, error) {
	scope := scopePaths(instance, opts.Area)
	result := &Result{Category: opts.Category}

	switch opts.Category {
	case CategoryNaming:
		result.Naming = discoverNaming(instance, scope)
	case CategoryOrganization:
		result.Organization = discoverOrganization(instance, scope)
	case CategoryModules:
		result.Modules = discoverModules(instance, scope)
	case CategoryArchitecture:
		tables := opts.LayerTables
		if tables == nil {
			tables = DefaultLayerTables()
		}
		result.Architecture = discoverArchitecture(instance, scope, tables)
	case CategorySimilar:
		if opts.FeatureType == "" {
			return nil, errors.New(errors.MissingParameter, "featureType is required for category \"similar\"")
		}
		result.Similar = discoverSimilar(instance, scope, opts.FeatureType)
	default:
		return nil, errors.Newf(errors.UnsupportedQuery, "unknown pattern category: %q", string(opts.Category))
	}

	return result, nil
}

// scopePaths returns the in-scope artifact paths sorted ascending. Sorted
// iteration keeps distributions, examples, and rankings deterministic
// regardless of map order.
func scopePaths(instance *model.Instance, area string) []string {
	match := func(string) bool { return true }
	if area != "" {
		match = globs.Compile(area)
	}

	paths := []string{}
	for path := range instance.Artifacts {
		if match(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

// inScope builds a membership set from the scope slice.
func inScope(scope []string) map[string]bool {
	set := make(map[string]bool, len(scope))
	for _, p := range scope {
		set[p] = true
	}
	return set
}

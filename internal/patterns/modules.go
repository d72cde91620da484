package patterns

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"cmg/internal/model"
)

// HighExportThreshold flags artifacts whose export count suggests a wide
// API surface.
const HighExportThreshold = 5

// SharedUtilityThreshold is the minimum inbound-dependency count for an
// artifact to count as a shared utility.
const SharedUtilityThreshold = 3

// BarrelFile is an index.<ext> re-export module.
type BarrelFile struct {
	Path        string `json:"path"`
	ExportCount int    `json:"exportCount"`
}

// SharedUtility is an artifact many others depend on.
type SharedUtility struct {
	Path         string `json:"path"`
	InboundCount int    `json:"inboundCount"`
}

// PatternSummary is one finding type with its occurrence count and up to
// 3 examples. Finding types with zero occurrences are omitted.
type PatternSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Occurrences int      `json:"occurrences"`
	Examples    []string `json:"examples"`
}

// ModulesResult reports module-structure findings.
type ModulesResult struct {
	BarrelFiles       []BarrelFile     `json:"barrelFiles"`
	EntryPoints       []string         `json:"entryPoints"`
	HighExportModules []BarrelFile     `json:"highExportModules"`
	SharedUtilities   []SharedUtility  `json:"sharedUtilities"`
	KindDistribution  map[string]int   `json:"kindDistribution"`
	Patterns          []PatternSummary `json:"patterns"`
}

func discoverModules(instance *model.Instance, scope []string) *ModulesResult {
	scoped := inScope(scope)

	result := &ModulesResult{
		BarrelFiles:       []BarrelFile{},
		EntryPoints:       []string{},
		HighExportModules: []BarrelFile{},
		SharedUtilities:   []SharedUtility{},
		KindDistribution:  map[string]int{},
		Patterns:          []PatternSummary{},
	}

	for _, p := range scope {
		a := instance.Artifacts[p]
		if isBarrel(p) {
			result.BarrelFiles = append(result.BarrelFiles, BarrelFile{Path: p, ExportCount: len(a.Exports)})
		}
		if a.Kind == "entry" {
			result.EntryPoints = append(result.EntryPoints, p)
		}
		if len(a.Exports) >= HighExportThreshold {
			result.HighExportModules = append(result.HighExportModules, BarrelFile{Path: p, ExportCount: len(a.Exports)})
		}
	}

	inbound := map[string]int{}
	for _, d := range instance.Dependencies {
		if scoped[d.From] || scoped[d.To] {
			result.KindDistribution[d.Kind]++
		}
		if scoped[d.To] {
			inbound[d.To]++
		}
	}

	for _, p := range scope {
		if inbound[p] >= SharedUtilityThreshold {
			result.SharedUtilities = append(result.SharedUtilities, SharedUtility{Path: p, InboundCount: inbound[p]})
		}
	}
	sort.SliceStable(result.SharedUtilities, func(i, j int) bool {
		if result.SharedUtilities[i].InboundCount != result.SharedUtilities[j].InboundCount {
			return result.SharedUtilities[i].InboundCount > result.SharedUtilities[j].InboundCount
		}
		return result.SharedUtilities[i].Path < result.SharedUtilities[j].Path
	})
	if len(result.SharedUtilities) > 10 {
		result.SharedUtilities = result.SharedUtilities[:10]
	}

	result.Patterns = summarizeModuleFindings(result)
	return result
}

// isBarrel reports whether the base filename is index.<ext>.
func isBarrel(p string) bool {
	base := path.Base(p)
	ext := path.Ext(base)
	return ext != "" && strings.TrimSuffix(base, ext) == "index"
}

func summarizeModuleFindings(r *ModulesResult) []PatternSummary {
	patterns := []PatternSummary{}

	if len(r.BarrelFiles) > 0 {
		examples := []string{}
		for _, b := range r.BarrelFiles {
			examples = append(examples, b.Path)
		}
		patterns = append(patterns, PatternSummary{
			Name:        "barrel-files",
			Description: "Index files re-exporting sibling modules",
			Occurrences: len(r.BarrelFiles),
			Examples:    firstN(examples, 3),
		})
	}
	if len(r.EntryPoints) > 0 {
		patterns = append(patterns, PatternSummary{
			Name:        "entry-points",
			Description: "Artifacts marked as application entry points",
			Occurrences: len(r.EntryPoints),
			Examples:    firstN(r.EntryPoints, 3),
		})
	}
	if len(r.HighExportModules) > 0 {
		examples := []string{}
		for _, h := range r.HighExportModules {
			examples = append(examples, h.Path)
		}
		patterns = append(patterns, PatternSummary{
			Name:        "high-export-modules",
			Description: fmt.Sprintf("Artifacts exporting %d+ symbols, a potential API-surface concern", HighExportThreshold),
			Occurrences: len(r.HighExportModules),
			Examples:    firstN(examples, 3),
		})
	}
	if len(r.SharedUtilities) > 0 {
		examples := []string{}
		for _, s := range r.SharedUtilities {
			examples = append(examples, s.Path)
		}
		patterns = append(patterns, PatternSummary{
			Name:        "shared-utilities",
			Description: fmt.Sprintf("Artifacts with %d+ inbound dependencies", SharedUtilityThreshold),
			Occurrences: len(r.SharedUtilities),
			Examples:    firstN(examples, 3),
		})
	}

	return patterns
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

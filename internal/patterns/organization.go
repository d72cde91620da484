package patterns

import (
	"path"
	"sort"
	"strings"

	"cmg/internal/model"
)

// DirectoryPattern describes one top-level group of artifacts.
type DirectoryPattern struct {
	Directory string   `json:"directory"`
	FileCount int      `json:"fileCount"`
	Types     []string `json:"types"`
	Kinds     []string `json:"kinds"`
	// Style is type-grouped (1 distinct type), cohesive (at most 2),
	// or mixed.
	Style string `json:"style"`
}

// OrganizationResult summarizes how the codebase is laid out on disk.
type OrganizationResult struct {
	Directories []DirectoryPattern `json:"directories"`
	Extensions  map[string]int     `json:"extensions"`
	// OverallStyle is group-by-type when more than 60% of directories are
	// type-grouped, group-by-feature below 30%, hybrid otherwise.
	OverallStyle string `json:"overallStyle"`
}

func discoverOrganization(instance *model.Instance, scope []string) *OrganizationResult {
	type group struct {
		files int
		types map[string]bool
		kinds map[string]bool
	}

	groups := map[string]*group{}
	var order []string
	extensions := map[string]int{}

	for _, p := range scope {
		top := strings.SplitN(p, "/", 2)[0]
		g, ok := groups[top]
		if !ok {
			g = &group{types: map[string]bool{}, kinds: map[string]bool{}}
			groups[top] = g
			order = append(order, top)
		}

		a := instance.Artifacts[p]
		g.files++
		if a.Type != "" {
			g.types[a.Type] = true
		}
		if a.Kind != "" {
			g.kinds[a.Kind] = true
		}
		if ext := path.Ext(p); ext != "" {
			extensions[ext]++
		}
	}

	directories := make([]DirectoryPattern, 0, len(order))
	typeGrouped := 0
	for _, top := range order {
		g := groups[top]
		dir := DirectoryPattern{
			Directory: top,
			FileCount: g.files,
			Types:     sortedKeys(g.types),
			Kinds:     sortedKeys(g.kinds),
			Style:     directoryStyle(len(g.types)),
		}
		if dir.Style == "type-grouped" {
			typeGrouped++
		}
		directories = append(directories, dir)
	}

	return &OrganizationResult{
		Directories:  directories,
		Extensions:   extensions,
		OverallStyle: overallStyle(typeGrouped, len(directories)),
	}
}

func directoryStyle(distinctTypes int) string {
	switch {
	case distinctTypes == 1:
		return "type-grouped"
	case distinctTypes <= 2:
		return "cohesive"
	default:
		return "mixed"
	}
}

func overallStyle(typeGrouped, total int) string {
	if total == 0 {
		// Neither threshold is meaningful on an empty scope
		return "hybrid"
	}
	ratio := float64(typeGrouped) / float64(total)
	switch {
	case ratio > 0.6:
		return "group-by-type"
	case ratio < 0.3:
		return "group-by-feature"
	default:
		return "hybrid"
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

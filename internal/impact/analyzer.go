// Package impact computes the transitive blast radius of changing one or
// more artifacts. It composes the glob translator for target resolution
// with the navigator's inbound BFS, so its depth-1 results always agree
// with a deps{inbound} query.
package impact

import (
	"sort"

	"cmg/internal/globs"
	"cmg/internal/graph"
	"cmg/internal/model"
)

// DefaultDepth bounds the reverse-dependency walk when the caller does not
// supply one.
const DefaultDepth = 2

// Target names what is changing. A name containing `*` is resolved as a
// glob over all artifact paths; otherwise it is taken as a literal path,
// even when absent from the artifact map.
type Target struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
}

// Options parameterizes an impact analysis.
type Options struct {
	Target Target `json:"target"`
}

// Result is the analysis outcome. AffectedFiles is deduplicated and keeps
// first-discovered order across all targets.
type Result struct {
	TargetEntities []string `json:"targetEntities"`
	AffectedFiles  []string `json:"affectedFiles"`
}

// Analyze resolves the target name to concrete artifact paths and unions
// the inbound reverse-dependency walk of each, bounded by the target depth.
func Analyze(schema *model.Schema, instance *model.Instance, opts Options) (*Result, error) {
	depth := opts.Target.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}

	targets := resolveTargets(instance, opts.Target.Name)

	affected := []string{}
	seen := map[string]bool{}
	for _, target := range targets {
		walk, err := graph.Walk(instance, graph.WalkOptions{
			Start:     target,
			Direction: graph.Incoming,
			MaxDepth:  depth,
		})
		if err != nil {
			return nil, err
		}
		for _, node := range walk.Nodes {
			if !seen[node] {
				seen[node] = true
				affected = append(affected, node)
			}
		}
	}

	return &Result{TargetEntities: targets, AffectedFiles: affected}, nil
}

// resolveTargets expands a glob name against all artifact paths. Matches
// are sorted ascending so the per-target walk order, and with it the union
// order of affectedFiles, is deterministic.
func resolveTargets(instance *model.Instance, name string) []string {
	if !globs.IsPattern(name) {
		return []string{name}
	}

	match := globs.Compile(name)
	targets := []string{}
	for path := range instance.Artifacts {
		if match(path) {
			targets = append(targets, path)
		}
	}
	sort.Strings(targets)
	return targets
}

// Package graph implements breadth-first traversal over the dependency
// edges of a loaded instance, producing depth-ordered layers with
// shortest-path semantics.
package graph

import (
	"cmg/internal/errors"
	"cmg/internal/model"
)

// Direction selects which way edges are followed during a walk.
type Direction string

const (
	// Outgoing follows edges from -> to
	Outgoing Direction = "outgoing"
	// Incoming follows edges to -> from
	Incoming Direction = "incoming"
)

// DefaultMaxDepth bounds walks when the caller does not supply a depth.
const DefaultMaxDepth = 3

// WalkOptions parameterizes a walk.
type WalkOptions struct {
	Start     string
	Direction Direction
	// MaxDepth stops expansion after this many hops; <=0 means DefaultMaxDepth.
	MaxDepth int
	// Limit caps total nodes across all layers, applied in discovery order
	// so nearer nodes win when the budget runs out; <=0 means unbounded.
	Limit int
}

// Layer is the set of artifacts at one shortest-path distance from the start.
type Layer struct {
	Depth     int      `json:"depth"`
	Artifacts []string `json:"artifacts"`
}

// WalkResult holds the reached nodes and their depth layers. The start node
// itself is excluded.
type WalkResult struct {
	Nodes  []string `json:"nodes"`
	Layers []Layer  `json:"layers"`
}

// Adjacency is a direction-resolved neighbor index. Neighbor lists preserve
// edge-array insertion order, which fixes the tie-break when a limit
// truncates a layer.
type Adjacency map[string][]string

// NewAdjacency builds the neighbor index for one direction from the
// instance's edge array. Parallel edges between the same pair produce
// duplicate neighbor entries; the visited set deduplicates during a walk.
func NewAdjacency(instance *model.Instance, dir Direction) Adjacency {
	adj := Adjacency{}
	for _, d := range instance.Dependencies {
		switch dir {
		case Outgoing:
			adj[d.From] = append(adj[d.From], d.To)
		case Incoming:
			adj[d.To] = append(adj[d.To], d.From)
		}
	}
	return adj
}

// Walk runs a bounded BFS from the start artifact. Each node is recorded
// exactly once at the depth of first discovery, so cyclic graphs terminate
// and every node in layer k has shortest-path distance k. A start path
// absent from the artifact map is not an error: it simply has no neighbors
// beyond whatever dangling edges name it.
func Walk(instance *model.Instance, opts WalkOptions) (*WalkResult, error) {
	switch opts.Direction {
	case Outgoing, Incoming:
	default:
		return nil, errors.Newf(errors.UnsupportedQuery, "unknown walk direction: %q", string(opts.Direction))
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	adj := NewAdjacency(instance, opts.Direction)
	return walkAdjacency(adj, opts.Start, maxDepth, opts.Limit), nil
}

func walkAdjacency(adj Adjacency, start string, maxDepth, limit int) *WalkResult {
	result := &WalkResult{Nodes: []string{}, Layers: []Layer{}}

	visited := map[string]bool{start: true}
	frontier := []string{start}

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		var next []string
		layer := Layer{Depth: depth, Artifacts: []string{}}

		for _, node := range frontier {
			for _, neighbor := range adj[node] {
				if visited[neighbor] {
					continue
				}
				if limit > 0 && len(result.Nodes) >= limit {
					appendLayer(result, layer)
					return result
				}
				visited[neighbor] = true
				layer.Artifacts = append(layer.Artifacts, neighbor)
				result.Nodes = append(result.Nodes, neighbor)
				next = append(next, neighbor)
			}
		}

		appendLayer(result, layer)
		frontier = next
	}

	return result
}

func appendLayer(result *WalkResult, layer Layer) {
	if len(layer.Artifacts) > 0 {
		result.Layers = append(result.Layers, layer)
	}
}

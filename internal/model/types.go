// Package model holds the loaded code model: schema metadata plus an
// immutable instance of artifacts, dependency edges, and flows. Every
// engine operation takes the schema and instance as explicit arguments;
// nothing in this package is mutated after Load returns.
package model

import (
	"strings"
)

// Schema describes element-type metadata loaded from schema.json.
// The engine treats the per-type metadata as opaque; it is carried for
// callers that render or validate against it.
type Schema struct {
	ElementTypes map[string]map[string]interface{} `json:"elementTypes"`
}

// Child is a nested symbol descriptor within an artifact.
type Child struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Artifact is an addressable unit of source code with structural metadata.
// Optional fields default to empty values; the engine never faults on a
// sparse record.
type Artifact struct {
	Type     string   `json:"type"`
	Kind     string   `json:"kind,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Intent   string   `json:"intent,omitempty"`
	Exports  []string `json:"exports"`
	Tags     []string `json:"tags"`
	Size     int64    `json:"size,omitempty"`
	Children []Child  `json:"children"`
}

// Dependency is a directed edge between two artifact paths. Endpoints may
// reference paths absent from the artifact map; such dangling edges refer
// to artifacts with no metadata.
type Dependency struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"`
}

// Flow records a cross-artifact execution or data path. The engine tracks
// flows only as an aggregate count.
type Flow struct {
	Name  string                 `json:"name,omitempty"`
	Steps []string               `json:"steps,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// Instance is the loaded code model snapshot.
type Instance struct {
	Artifacts    map[string]Artifact `json:"artifacts"`
	Dependencies []Dependency        `json:"dependencies"`
	Flows        map[string]Flow     `json:"flows"`
}

// Model is the caller-owned handle produced by Load. SnapshotID identifies
// the loaded snapshot in logs; it never appears in operation results.
type Model struct {
	Schema   *Schema
	Instance *Instance

	SnapshotID string
	DataDir    string
}

// SearchText returns the lowercased text surface an artifact is scored
// against: path, type, kind, summary, intent, tags, and exports. Search
// and similarity scoring share this surface.
func SearchText(path string, a Artifact) string {
	parts := make([]string, 0, 6+len(a.Tags)+len(a.Exports))
	parts = append(parts, path, a.Type, a.Kind, a.Summary, a.Intent)
	parts = append(parts, a.Tags...)
	parts = append(parts, a.Exports...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Package query implements the executor for direct queries against a
// loaded model: dependency lookup, search, and stats. Every function is a
// pure function of its inputs, so queries may run interleaved or in
// parallel against the same instance with no coordination.
package query

import (
	"sort"
	"strings"

	"cmg/internal/errors"
	"cmg/internal/model"
)

// Type selects a query variant.
type Type string

const (
	// TypeDeps looks up dependency edges touching one artifact
	TypeDeps Type = "deps"
	// TypeSearch scores artifacts against a natural-language pattern
	TypeSearch Type = "search"
	// TypeStats returns model cardinalities
	TypeStats Type = "stats"
)

// Direction selects which dependency edges a deps query returns.
type Direction string

const (
	// Inbound matches edges pointing at the artifact (to == artifact)
	Inbound Direction = "inbound"
	// Outbound matches edges leaving the artifact (from == artifact)
	Outbound Direction = "outbound"
	// Both is the union, with each edge's direction preserved
	Both Direction = "both"
)

// Query is a tagged union over the supported variants. Exactly one of the
// variant fields is consulted, selected by Type.
type Query struct {
	Type   Type         `json:"type"`
	Deps   *DepsQuery   `json:"deps,omitempty"`
	Search *SearchQuery `json:"search,omitempty"`
}

// DepsQuery parameterizes a deps query.
type DepsQuery struct {
	Artifact  string    `json:"artifact"`
	Direction Direction `json:"direction"`
}

// SearchQuery parameterizes a search query.
type SearchQuery struct {
	Pattern string `json:"pattern"`
}

// DepsResult lists the matching dependency edges in edge-array order.
type DepsResult struct {
	Results []model.Dependency `json:"results"`
}

// SearchHit is one scored artifact.
type SearchHit struct {
	Path  string `json:"path"`
	Score int    `json:"score"`
}

// SearchResult lists score>0 artifacts, best first.
type SearchResult struct {
	Results []SearchHit `json:"results"`
	Count   int         `json:"count"`
}

// StatsCounts holds model cardinalities.
type StatsCounts struct {
	ArtifactCount   int `json:"artifactCount"`
	DependencyCount int `json:"dependencyCount"`
	FlowCount       int `json:"flowCount"`
}

// StatsResult wraps stats counts.
type StatsResult struct {
	Results StatsCounts `json:"results"`
}

// Execute dispatches a query against the instance. An unrecognized
// query type or direction fails with UNSUPPORTED_QUERY: that signals a
// caller typo, unlike an unknown artifact, which is a legitimate empty
// result.
func Execute(schema *model.Schema, instance *model.Instance, q Query) (interface{}, error) {
	switch q.Type {
	case TypeDeps:
		var dq DepsQuery
		if q.Deps != nil {
			dq = *q.Deps
		}
		return Deps(instance, dq)
	case TypeSearch:
		var sq SearchQuery
		if q.Search != nil {
			sq = *q.Search
		}
		return Search(instance, sq), nil
	case TypeStats:
		return Stats(instance), nil
	default:
		return nil, errors.Newf(errors.UnsupportedQuery, "unknown query type: %q", string(q.Type))
	}
}

// Deps returns the dependency edges touching an artifact in the requested
// direction, in edge-array insertion order. An unknown artifact yields an
// empty result.
func Deps(instance *model.Instance, q DepsQuery) (*DepsResult, error) {
	switch q.Direction {
	case Inbound, Outbound, Both:
	default:
		return nil, errors.Newf(errors.UnsupportedQuery, "unknown deps direction: %q", string(q.Direction))
	}

	results := []model.Dependency{}
	for _, d := range instance.Dependencies {
		if matchesDirection(d, q.Artifact, q.Direction) {
			results = append(results, d)
		}
	}
	return &DepsResult{Results: results}, nil
}

func matchesDirection(d model.Dependency, artifact string, dir Direction) bool {
	switch dir {
	case Inbound:
		return d.To == artifact
	case Outbound:
		return d.From == artifact
	default: // Both
		return d.From == artifact || d.To == artifact
	}
}

// Search tokenizes the pattern on whitespace and scores every artifact by
// how many terms hit its search text (case-insensitive substring). Only
// score>0 artifacts are returned, sorted by descending score with path
// ascending as the tie-break for determinism.
func Search(instance *model.Instance, q SearchQuery) *SearchResult {
	terms := strings.Fields(strings.ToLower(q.Pattern))

	results := []SearchHit{}
	if len(terms) > 0 {
		for path, a := range instance.Artifacts {
			score := ScoreTerms(model.SearchText(path, a), terms)
			if score > 0 {
				results = append(results, SearchHit{Path: path, Score: score})
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Path < results[j].Path
	})

	return &SearchResult{Results: results, Count: len(results)}
}

// ScoreTerms counts how many terms appear in text. One point per matching
// term, regardless of how often it occurs. Similarity scoring reuses this.
func ScoreTerms(text string, terms []string) int {
	score := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			score++
		}
	}
	return score
}

// Stats returns the model's cardinalities.
func Stats(instance *model.Instance) *StatsResult {
	return &StatsResult{Results: StatsCounts{
		ArtifactCount:   len(instance.Artifacts),
		DependencyCount: len(instance.Dependencies),
		FlowCount:       len(instance.Flows),
	}}
}

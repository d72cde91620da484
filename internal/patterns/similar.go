package patterns

import (
	"regexp"
	"sort"
	"strings"

	"cmg/internal/model"
	"cmg/internal/output"
	"cmg/internal/query"
)

// Weight bonuses for exact metadata matches on top of per-token hits.
const (
	typeMatchBonus = 3
	kindMatchBonus = 2
)

var tokenSplitter = regexp.MustCompile(`[\s_-]+`)

// SimilarHit is one artifact resembling the requested feature, with its
// nearest edges for context.
type SimilarHit struct {
	Path           string             `json:"path"`
	RelevanceScore float64            `json:"relevanceScore"`
	OutboundDeps   []model.Dependency `json:"outboundDeps"`
	InboundDeps    []model.Dependency `json:"inboundDeps"`
}

// SimilarResult lists the top matches for a feature type, best first.
type SimilarResult struct {
	FeatureType string       `json:"featureType"`
	Results     []SimilarHit `json:"results"`
}

func discoverSimilar(instance *model.Instance, scope []string, featureType string) *SimilarResult {
	tokens := tokenize(featureType)

	type scored struct {
		path  string
		score int
	}
	hits := []scored{}
	for _, p := range scope {
		a := instance.Artifacts[p]
		score := query.ScoreTerms(model.SearchText(p, a), tokens)
		if strings.EqualFold(a.Type, featureType) {
			score += typeMatchBonus
		}
		if strings.EqualFold(a.Kind, featureType) {
			score += kindMatchBonus
		}
		if score > 0 {
			hits = append(hits, scored{path: p, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].path < hits[j].path
	})
	if len(hits) > 10 {
		hits = hits[:10]
	}

	denominator := float64(len(tokens) + 3)
	results := make([]SimilarHit, 0, len(hits))
	for _, h := range hits {
		results = append(results, SimilarHit{
			Path:           h.path,
			RelevanceScore: output.Round2(float64(h.score) / denominator),
			OutboundDeps:   edgesFor(instance, h.path, true),
			InboundDeps:    edgesFor(instance, h.path, false),
		})
	}

	return &SimilarResult{FeatureType: featureType, Results: results}
}

// tokenize splits the feature description on whitespace, underscores, and
// hyphens, lowercased.
func tokenize(featureType string) []string {
	tokens := []string{}
	for _, t := range tokenSplitter.Split(strings.ToLower(featureType), -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// edgesFor returns the first 5 edges leaving (or entering) the path, in
// edge-array order.
func edgesFor(instance *model.Instance, p string, outbound bool) []model.Dependency {
	edges := []model.Dependency{}
	for _, d := range instance.Dependencies {
		if len(edges) == 5 {
			break
		}
		if (outbound && d.From == p) || (!outbound && d.To == p) {
			edges = append(edges, d)
		}
	}
	return edges
}

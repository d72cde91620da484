package patterns

import (
	"fmt"
	"strings"

	"cmg/internal/model"
)

// LayerInfo summarizes one architecture layer: its artifact count and up
// to 5 examples.
type LayerInfo struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// ArchitectureResult reports heuristic layering over the scoped artifacts.
type ArchitectureResult struct {
	Layers map[string]LayerInfo `json:"layers"`
	// CrossLayerEdges counts dependency edges whose endpoints sit in
	// different classified layers.
	CrossLayerEdges int `json:"crossLayerEdges"`
	// EdgeHistogram tallies cross-layer edges as "from-layer → to-layer".
	EdgeHistogram map[string]int `json:"edgeHistogram"`
	Style         string         `json:"style"`
}

func discoverArchitecture(instance *model.Instance, scope []string, tables LayerTables) *ArchitectureResult {
	layers := map[string]LayerInfo{}
	classified := map[string]string{}

	for _, p := range scope {
		layer := classifyLayer(p, instance.Artifacts[p], tables)
		classified[p] = layer

		info := layers[layer]
		info.Count++
		if len(info.Examples) < 5 {
			info.Examples = append(info.Examples, p)
		}
		layers[layer] = info
	}

	histogram := map[string]int{}
	crossEdges := 0
	for _, d := range instance.Dependencies {
		from, fromOK := classified[d.From]
		to, toOK := classified[d.To]
		if !fromOK || !toOK || from == LayerUnclassified || to == LayerUnclassified {
			continue
		}
		if from != to {
			crossEdges++
			histogram[fmt.Sprintf("%s → %s", from, to)]++
		}
	}

	return &ArchitectureResult{
		Layers:          layers,
		CrossLayerEdges: crossEdges,
		EdgeHistogram:   histogram,
		Style:           architectureStyle(layers),
	}
}

// classifyLayer matches keywords case-insensitively against the artifact
// path, then its kind, then its type. Within each pass, layers are tried
// in fixed order and the first match wins.
func classifyLayer(p string, a model.Artifact, tables LayerTables) string {
	lowerPath := strings.ToLower(p)
	lowerKind := strings.ToLower(a.Kind)
	lowerType := strings.ToLower(a.Type)

	for _, layer := range layerOrder {
		if containsAny(lowerPath, tables[layer].Path) {
			return layer
		}
	}
	for _, layer := range layerOrder {
		if lowerKind != "" && matchesAny(lowerKind, tables[layer].Kind) {
			return layer
		}
	}
	for _, layer := range layerOrder {
		if lowerType != "" && matchesAny(lowerType, tables[layer].Type) {
			return layer
		}
	}
	return LayerUnclassified
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if s == kw {
			return true
		}
	}
	return false
}

// architectureStyle infers the overall style from how many layers are
// populated: flat (<2), modular (2-3), layered (>=4). Layered refines to
// MVC-like when presentation, service, and domain are all present, or
// service-based when domain is missing but presentation and service are
// there.
func architectureStyle(layers map[string]LayerInfo) string {
	populated := 0
	for _, layer := range layerOrder {
		if layers[layer].Count > 0 {
			populated++
		}
	}

	switch {
	case populated < 2:
		return "flat"
	case populated <= 3:
		return "modular"
	}

	hasPresentation := layers[LayerPresentation].Count > 0
	hasService := layers[LayerService].Count > 0
	hasDomain := layers[LayerDomain].Count > 0

	if hasPresentation && hasService && hasDomain {
		return "layered (MVC-like)"
	}
	if hasPresentation && hasService {
		return "layered (service-based)"
	}
	return "layered"
}

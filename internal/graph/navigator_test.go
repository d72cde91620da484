package graph

import (
	"reflect"
	"testing"

	"cmg/internal/errors"
	"cmg/internal/model"
)

func chainInstance() *model.Instance {
	// A -> B -> C
	return &model.Instance{
		Artifacts: map[string]model.Artifact{
			"A": {Type: "module"},
			"B": {Type: "module"},
			"C": {Type: "module"},
		},
		Dependencies: []model.Dependency{
			{From: "A", To: "B", Kind: "import"},
			{From: "B", To: "C", Kind: "import"},
		},
	}
}

func TestWalkChain(t *testing.T) {
	// Scenario 1: walk A outgoing, maxDepth 2 -> layers [{1,[B]},{2,[C]}]
	res, err := Walk(chainInstance(), WalkOptions{Start: "A", Direction: Outgoing, MaxDepth: 2})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	expected := []Layer{
		{Depth: 1, Artifacts: []string{"B"}},
		{Depth: 2, Artifacts: []string{"C"}},
	}
	if !reflect.DeepEqual(res.Layers, expected) {
		t.Errorf("expected layers %+v, got %+v", expected, res.Layers)
	}
	if !reflect.DeepEqual(res.Nodes, []string{"B", "C"}) {
		t.Errorf("expected nodes [B C], got %v", res.Nodes)
	}
}

func TestWalkIncoming(t *testing.T) {
	res, err := Walk(chainInstance(), WalkOptions{Start: "C", Direction: Incoming, MaxDepth: 2})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if !reflect.DeepEqual(res.Nodes, []string{"B", "A"}) {
		t.Errorf("expected nodes [B A], got %v", res.Nodes)
	}
}

func TestWalkDepthCap(t *testing.T) {
	res, err := Walk(chainInstance(), WalkOptions{Start: "A", Direction: Outgoing, MaxDepth: 1})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(res.Layers) != 1 || len(res.Nodes) != 1 {
		t.Errorf("expected only depth-1 nodes, got %+v", res)
	}
}

func TestWalkCycleTerminates(t *testing.T) {
	instance := &model.Instance{
		Artifacts: map[string]model.Artifact{},
		Dependencies: []model.Dependency{
			{From: "A", To: "B", Kind: "import"},
			{From: "B", To: "C", Kind: "import"},
			{From: "C", To: "A", Kind: "import"},
		},
	}

	res, err := Walk(instance, WalkOptions{Start: "A", Direction: Outgoing, MaxDepth: 10})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	// A is the start and must not reappear even though C points back at it
	if !reflect.DeepEqual(res.Nodes, []string{"B", "C"}) {
		t.Errorf("expected nodes [B C], got %v", res.Nodes)
	}
}

func TestWalkShortestPathInvariant(t *testing.T) {
	// Diamond with a long way around: A->B, A->C, B->D, C->D, D->E.
	// D is reachable at depth 2 twice; it must appear once, at depth 2.
	instance := &model.Instance{
		Artifacts: map[string]model.Artifact{},
		Dependencies: []model.Dependency{
			{From: "A", To: "B", Kind: "import"},
			{From: "A", To: "C", Kind: "import"},
			{From: "B", To: "D", Kind: "import"},
			{From: "C", To: "D", Kind: "import"},
			{From: "D", To: "E", Kind: "import"},
		},
	}

	res, err := Walk(instance, WalkOptions{Start: "A", Direction: Outgoing, MaxDepth: 5})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	seen := map[string]int{}
	for _, layer := range res.Layers {
		for _, a := range layer.Artifacts {
			if prev, ok := seen[a]; ok {
				t.Errorf("node %s appears in layers %d and %d", a, prev, layer.Depth)
			}
			seen[a] = layer.Depth
		}
	}
	if seen["D"] != 2 {
		t.Errorf("expected D at depth 2, got %d", seen["D"])
	}
	if seen["E"] != 3 {
		t.Errorf("expected E at depth 3, got %d", seen["E"])
	}
}

func TestWalkParallelEdgesRecordOnce(t *testing.T) {
	instance := &model.Instance{
		Artifacts: map[string]model.Artifact{},
		Dependencies: []model.Dependency{
			{From: "A", To: "B", Kind: "import"},
			{From: "A", To: "B", Kind: "call"},
		},
	}

	res, err := Walk(instance, WalkOptions{Start: "A", Direction: Outgoing, MaxDepth: 1})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if !reflect.DeepEqual(res.Nodes, []string{"B"}) {
		t.Errorf("expected B recorded once, got %v", res.Nodes)
	}
}

// Limit is a global cap applied in discovery order, which is edge-array
// insertion order within a layer. Earlier-inserted edges win a mid-layer
// truncation.
func TestWalkLimitTruncationOrder(t *testing.T) {
	instance := &model.Instance{
		Artifacts: map[string]model.Artifact{},
		Dependencies: []model.Dependency{
			{From: "hub", To: "first", Kind: "import"},
			{From: "hub", To: "second", Kind: "import"},
			{From: "hub", To: "third", Kind: "import"},
			{From: "first", To: "deeper", Kind: "import"},
		},
	}

	res, err := Walk(instance, WalkOptions{Start: "hub", Direction: Outgoing, MaxDepth: 3, Limit: 2})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if !reflect.DeepEqual(res.Nodes, []string{"first", "second"}) {
		t.Errorf("expected [first second] under limit 2, got %v", res.Nodes)
	}
	if len(res.Layers) != 1 {
		t.Errorf("expected a single truncated layer, got %+v", res.Layers)
	}
}

func TestWalkUnknownStart(t *testing.T) {
	res, err := Walk(chainInstance(), WalkOptions{Start: "ghost.js", Direction: Outgoing, MaxDepth: 3})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(res.Nodes) != 0 || len(res.Layers) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestWalkDefaultDepth(t *testing.T) {
	// Chain longer than the default depth of 3
	instance := &model.Instance{
		Artifacts: map[string]model.Artifact{},
		Dependencies: []model.Dependency{
			{From: "a", To: "b", Kind: "import"},
			{From: "b", To: "c", Kind: "import"},
			{From: "c", To: "d", Kind: "import"},
			{From: "d", To: "e", Kind: "import"},
		},
	}

	res, err := Walk(instance, WalkOptions{Start: "a", Direction: Outgoing})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(res.Nodes) != DefaultMaxDepth {
		t.Errorf("expected %d nodes at default depth, got %v", DefaultMaxDepth, res.Nodes)
	}
}

func TestWalkUnknownDirection(t *testing.T) {
	_, err := Walk(chainInstance(), WalkOptions{Start: "A", Direction: "sideways"})
	if !errors.IsCode(err, errors.UnsupportedQuery) {
		t.Errorf("expected UNSUPPORTED_QUERY, got %v", err)
	}
}

func TestDirectionSymmetry(t *testing.T) {
	// If edge A->B exists, walking outgoing from A at depth 1 reaches B
	// and walking incoming from B at depth 1 reaches A.
	instance := chainInstance()

	out, err := Walk(instance, WalkOptions{Start: "A", Direction: Outgoing, MaxDepth: 1})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	in, err := Walk(instance, WalkOptions{Start: "B", Direction: Incoming, MaxDepth: 1})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if !reflect.DeepEqual(out.Nodes, []string{"B"}) {
		t.Errorf("expected outgoing walk from A to reach B, got %v", out.Nodes)
	}
	if !reflect.DeepEqual(in.Nodes, []string{"A"}) {
		t.Errorf("expected incoming walk from B to reach A, got %v", in.Nodes)
	}
}

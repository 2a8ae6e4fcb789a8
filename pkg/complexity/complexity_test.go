package complexity

import (
	"fmt"
	"slices"
	"testing"

	"github.com/matzehuels/apigraph/pkg/config"
	"github.com/matzehuels/apigraph/pkg/errors"
	"github.com/matzehuels/apigraph/pkg/model"
)

type link struct {
	from, to string
	kind     model.EdgeKind
}

func rel(from, to string) link { return link{from, to, model.EdgeRelationship} }

func newGraph(t *testing.T, links ...link) *model.Graph {
	t.Helper()
	g := model.New()
	for _, l := range links {
		for _, name := range []string{l.from, l.to} {
			if !g.HasNode(name) {
				if err := g.AddNode(model.NewNode(name)); err != nil {
					t.Fatal(err)
				}
			}
		}
		if err := g.AddEdge(&model.Edge{From: l.from, To: l.to, Kind: l.kind, Label: l.to}); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// hubGraph returns Order pointing at four hubs of eleven leaves each plus a
// leaf of its own: fifty nodes.
func hubGraph(t *testing.T) *model.Graph {
	var links []link
	for _, hub := range []string{"A", "B", "C", "D"} {
		links = append(links, rel("Order", hub))
	}
	links = append(links, rel("Order", "Note"))
	for _, hub := range []string{"A", "B", "C", "D"} {
		for i := 1; i <= 11; i++ {
			links = append(links, rel(hub, fmt.Sprintf("%s%d", hub, i)))
		}
	}
	return newGraph(t, links...)
}

func TestPathLengths(t *testing.T) {
	g := newGraph(t,
		rel("P", "A"), rel("P", "B"),
		rel("A", "A"), rel("A", "C"),
		rel("C", "P"),
		rel("B", "D"), rel("D", "C"),
	)
	_ = g.AddNode(model.NewNode("Island"))

	p := PathLengths(g, "P")
	wantShort := map[string]int{"P": 0, "A": 1, "B": 1, "C": 2, "D": 2}
	wantLong := map[string]int{"P": 0, "A": 1, "B": 1, "C": 3, "D": 2}
	for name, want := range wantShort {
		if got := p.Shortest[name]; got != want {
			t.Errorf("Shortest[%s] = %d, want %d", name, got, want)
		}
		if got := p.Longest[name]; got != wantLong[name] {
			t.Errorf("Longest[%s] = %d, want %d", name, got, wantLong[name])
		}
	}
	if p.Has("Island") {
		t.Error("Island has no path from P")
	}
	if PathLengths(g, "Missing").Has("P") {
		t.Error("missing pivot must yield no paths")
	}
}

func TestScoreHubGraph(t *testing.T) {
	r, err := Score(hubGraph(t), "Order", DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	a, _ := r.Node("A")
	if a.Contribution != 3432 || a.Size != 12 || a.Neighbors != 12 || a.FanOut != 11 {
		t.Errorf("A = %+v", a)
	}
	order, _ := r.Node("Order")
	if order.Contribution != 1275 {
		t.Errorf("Order = %+v", order)
	}
	if leaf, _ := r.Node("A1"); leaf.Excluded != SimplePrefix || leaf.Contribution != 0 {
		t.Errorf("A1 = %+v", leaf)
	}
	if r.Total != 14003 {
		t.Errorf("Total = %g, want 14003", r.Total)
	}
	if !r.NonTrivial() || !r.MustDecompose() {
		t.Error("hub graph should require decomposition")
	}
	if want := []string{"A", "B", "C"}; !slices.Equal(r.Candidates, want) {
		t.Errorf("Candidates = %v, want %v", r.Candidates, want)
	}
	if r.Nodes[0].Name != "A" || r.Nodes[4].Name != "Order" {
		t.Errorf("ordering = %s, %s", r.Nodes[0].Name, r.Nodes[4].Name)
	}
}

func TestScoreBelowThreshold(t *testing.T) {
	p := DefaultParams()
	p.HighThreshold = 20000
	r, err := Score(hubGraph(t), "Order", p)
	if err != nil {
		t.Fatal(err)
	}
	if r.MustDecompose() || len(r.Candidates) != 0 {
		t.Errorf("Candidates = %v, want none", r.Candidates)
	}
}

func TestScoreRules(t *testing.T) {
	params := func(mutate func(*Params)) Params {
		p := DefaultParams()
		p.MinSubgraphSize = 0
		if mutate != nil {
			mutate(&p)
		}
		return p
	}

	tests := []struct {
		name     string
		links    []link
		params   Params
		node     string
		want     float64
		excluded Exclusion
	}{
		{
			name:     "inheritance only forces inclusion",
			links:    []link{rel("P", "X"), {"X", "Y", model.EdgeAllOf}},
			params:   params(nil),
			node:     "X",
			want:     4,
			excluded: Included,
		},
		{
			name:     "leaf is a simple prefix",
			links:    []link{rel("P", "X"), {"X", "Y", model.EdgeAllOf}},
			params:   params(nil),
			node:     "Y",
			excluded: SimplePrefix,
		},
		{
			name:     "reference wrapper is scored",
			links:    []link{rel("P", "Reference"), rel("Reference", "Target")},
			params:   params(nil),
			node:     "Reference",
			want:     4,
			excluded: Included,
		},
		{
			name:     "discriminator targets raise the score",
			links:    []link{rel("P", "X"), {"X", "Y", model.EdgeDiscriminator}},
			params:   params(nil),
			node:     "X",
			want:     6,
			excluded: Included,
		},
		{
			name:     "below minimum size",
			links:    []link{rel("P", "X"), {"X", "Y", model.EdgeAllOf}},
			params:   params(func(p *Params) { p.MinSubgraphSize = 3 }),
			node:     "X",
			excluded: TooSmall,
		},
		{
			name:  "recognized resource keeps small subgraph",
			links: []link{rel("P", "X"), {"X", "Y", model.EdgeAllOf}},
			params: params(func(p *Params) {
				p.MinSubgraphSize = 3
				p.Resources = config.MustCompile("X")
			}),
			node:     "X",
			want:     4,
			excluded: Included,
		},
		{
			name:     "unreachable",
			links:    []link{rel("P", "X"), rel("Q", "X")},
			params:   params(nil),
			node:     "Q",
			excluded: Unreachable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Score(newGraph(t, tt.links...), tt.links[0].from, tt.params)
			if err != nil {
				t.Fatal(err)
			}
			s, ok := r.Node(tt.node)
			if !ok {
				t.Fatalf("%s not scored", tt.node)
			}
			if s.Contribution != tt.want || s.Excluded != tt.excluded {
				t.Errorf("%s = %+v, want contribution %g (%s)", tt.node, s, tt.want, tt.excluded)
			}
		})
	}
}

func TestScoreStripsSimpleNodes(t *testing.T) {
	g := newGraph(t, rel("P", "Id"), rel("P", "X"))
	id, _ := g.Node("Id")
	id.Simple = true
	r, err := Score(g, "P", DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Node("Id"); ok {
		t.Error("simple node should not be scored")
	}
	if g.NodeCount() != 3 {
		t.Error("Score must not modify its input")
	}

	if _, err := Score(g, "Id", DefaultParams()); err != nil {
		t.Errorf("simple pivot should be kept: %v", err)
	}
}

func TestLonePivotGetsMaximumComplexity(t *testing.T) {
	g := model.New()
	_ = g.AddNode(model.NewNode("Thing"))
	r, err := Score(g, "Thing", DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if r.Total != config.DefaultMaxDiagramComplexity {
		t.Errorf("Total = %g, want %g", r.Total, config.DefaultMaxDiagramComplexity)
	}
}

func TestScoreUnknownPivot(t *testing.T) {
	_, err := Score(model.New(), "Nope", DefaultParams())
	if !errors.Is(err, errors.ErrCodeTypeNotFound) {
		t.Errorf("err = %v, want TYPE_NOT_FOUND", err)
	}
}

func TestIsCutPoint(t *testing.T) {
	var links []link
	links = append(links, rel("P", "H1"), rel("P", "H2"), rel("P", "H3"))
	for i := 1; i <= 4; i++ {
		leaf := fmt.Sprintf("L%d", i)
		links = append(links, rel("H1", leaf), rel("H2", leaf))
	}
	links = append(links, rel("H3", "Own"))
	g := newGraph(t, links...)

	tests := []struct {
		node string
		want bool
	}{
		{"H1", false}, // leaves still reachable through H2
		{"H3", true},
		{"Own", false}, // leaf: nothing below it to disconnect
	}
	for _, tt := range tests {
		t.Run(tt.node, func(t *testing.T) {
			if got := isCutPoint(g, "P", tt.node, g.Reachable(tt.node)); got != tt.want {
				t.Errorf("isCutPoint(%s) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

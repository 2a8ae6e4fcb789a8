package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/apigraph/pkg/model"
)

func petGraph(t *testing.T) *model.Graph {
	t.Helper()
	g := model.New()
	pet := model.NewNode("Pet")
	pet.DiscriminatorProperty = "kind"
	pet.Properties = []model.Property{
		{Name: "name", Type: "string", Cardinality: "1"},
		{Name: "id", Type: "string", Visibility: model.VisibilityInherited},
		{Name: "etag", Type: "string", Visibility: model.VisibilityInheritedHidden},
		{Name: "status", Type: "Status", IsEnum: true},
	}
	dog := model.NewNode("Dog")
	shipping := model.NewNode("Order.shipping")
	shipping.Inline = "{street: string}"
	for _, n := range []*model.Node{pet, dog, shipping, model.NewEnumNode("Status", []string{"alive", "dead"}, true)} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []*model.Edge{
		{From: "Dog", To: "Pet", Kind: model.EdgeAllOf, Marked: true},
		{From: "Pet", To: "Dog", Kind: model.EdgeDiscriminator, Marked: true},
		{From: "Pet", To: "Status", Kind: model.EdgeEnum, Label: "status", Cardinality: "0..1"},
		{From: "Dog", To: "Order.shipping", Kind: model.EdgeRelationship, Label: "ship"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(petGraph(t), Options{})

	for _, want := range []string{
		"digraph G",
		`"Pet" [label="Pet"]`,
		`"Status" [label="«enum»\nStatus", fillcolor=lightyellow]`,
		`"Dog" -> "Pet" [arrowhead=empty, color=grey60, fontcolor=grey60]`,
		`"Pet" -> "Dog" [arrowhead=vee, style=dashed, color=grey60, fontcolor=grey60]`,
		`"Pet" -> "Status" [arrowhead=vee, style=dotted, label="status 0..1"]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %s\n%s", want, dot)
		}
	}
}

func TestToDOT_Root(t *testing.T) {
	dot := ToDOT(petGraph(t), Options{Root: "Dog", Title: "Dog"})
	if !strings.Contains(dot, `"Dog" [label="Dog", fillcolor=lightblue]`) {
		t.Errorf("root not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `label="Dog";`) {
		t.Errorf("title missing:\n%s", dot)
	}
}

func TestFmtLabel(t *testing.T) {
	g := petGraph(t)
	node := func(name string) *model.Node {
		n, _ := g.Node(name)
		return n
	}

	tests := []struct {
		name     string
		node     *model.Node
		detailed bool
		want     string
	}{
		{"simple", node("Pet"), false, "Pet"},
		{"properties", node("Pet"), true, `{Pet|#kind\lname: string [1]\l^id: string\lstatus: Status\l}`},
		{"enum", node("Status"), true, `{«enum»\nStatus|alive\ldead\lnull\l}`},
		{"inline", node("Order.shipping"), true, `{Order.shipping|= \{street: string\}\l}`},
		{"empty", node("Dog"), true, `{Dog}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtLabel(tt.node, tt.detailed); got != tt.want {
				t.Errorf("fmtLabel() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEdgeAttrs(t *testing.T) {
	tests := []struct {
		name string
		edge model.Edge
		want string
	}{
		{"relationship", model.Edge{Kind: model.EdgeRelationship, Label: "owner"}, `arrowhead=vee label="owner"`},
		{"oneOf", model.Edge{Kind: model.EdgeOneOf}, "arrowhead=odiamond"},
		{"containment", model.Edge{Kind: model.EdgeAllOf, Containment: true}, "arrowhead=diamond"},
		{"deprecated", model.Edge{Kind: model.EdgeAllOf, Deprecated: true}, "arrowhead=empty penwidth=0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(edgeAttrs(&tt.edge), " "); got != tt.want {
				t.Errorf("edgeAttrs() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	if got := escape(`a{b}|<c>"`); got != `a\{b\}\|\<c\>\"` {
		t.Errorf("escape() = %s", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.svg))); got != tt.want {
				t.Errorf("normalizeViewBox() = %s, want %s", got, tt.want)
			}
		})
	}
}

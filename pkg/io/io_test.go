package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/apigraph/pkg/model"
)

func vehicles(t *testing.T) *model.Graph {
	t.Helper()
	g := model.New()
	vehicle := model.NewNode("Vehicle")
	vehicle.DiscriminatorProperty = "kind"
	vehicle.Discriminators = model.NewNameSet("Truck", "Car")
	vehicle.LocalDiscriminators = model.NewNameSet("Car", "Truck")
	vehicle.Properties = []model.Property{
		{Name: "wheels", Type: "integer", Cardinality: "1", Required: true},
		{Name: "color", Type: "Color", IsEnum: true, EnumValues: []string{"red"}, Visibility: model.VisibilityInherited},
	}
	vehicle.EnumRefs = []string{"Color"}
	car := model.NewNode("Car")
	car.Inheritance = model.NewNameSet("Vehicle")
	car.TypeTag = "Car"
	for _, n := range []*model.Node{vehicle, car, model.NewNode("Truck"), model.NewEnumNode("Color", []string{"red"}, true)} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []*model.Edge{
		{From: "Car", To: "Vehicle", Kind: model.EdgeAllOf, Marked: true},
		{From: "Vehicle", To: "Car", Kind: model.EdgeDiscriminator, Marked: true},
		{From: "Vehicle", To: "Truck", Kind: model.EdgeDiscriminator},
		{From: "Vehicle", To: "Color", Kind: model.EdgeEnum, Label: "color", Cardinality: "0..1"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestRoundTrip(t *testing.T) {
	g := vehicles(t)
	var first bytes.Buffer
	if err := WriteGraph(g, &first); err != nil {
		t.Fatal(err)
	}
	back, err := ReadGraph(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	var second bytes.Buffer
	if err := WriteGraph(back, &second); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("round trip differs:\n%s\n%s", first.String(), second.String())
	}

	v, _ := back.Node("Vehicle")
	if !v.Discriminators.Equal(model.NewNameSet("Car", "Truck")) || v.Properties[1].Visibility != model.VisibilityInherited {
		t.Errorf("Vehicle = %+v", v)
	}
	if c, _ := back.Node("Color"); !c.IsEnum() || !c.Nullable {
		t.Errorf("Color = %+v", c)
	}
	if back.EdgeCount() != 4 || !back.Edges()[0].Marked {
		t.Error("edges not restored")
	}
}

func TestWriteGraphSortsSets(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGraph(vehicles(t), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"discriminators": [
        "Car",
        "Truck"
      ]`) {
		t.Errorf("discriminators not sorted:\n%s", buf.String())
	}
}

func TestWriteSubGraphs(t *testing.T) {
	g := vehicles(t)
	sub := g.Induced(model.NewNameSet("Car", "Vehicle"))
	var buf bytes.Buffer
	if err := WriteSubGraphs(map[string]*model.Graph{"Vehicle": g, "Car": sub}, &buf); err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		SubGraphs map[string]struct {
			Nodes []json.RawMessage `json:"nodes"`
			Edges []json.RawMessage `json:"edges"`
		} `json:"subgraphs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if got := decoded.SubGraphs["Car"]; len(got.Nodes) != 2 || len(got.Edges) != 2 {
		t.Errorf("Car subgraph has %d nodes, %d edges", len(got.Nodes), len(got.Edges))
	}
	if got := decoded.SubGraphs["Vehicle"]; len(got.Nodes) != 4 {
		t.Errorf("Vehicle subgraph has %d nodes", len(got.Nodes))
	}

	back, err := ReadSubGraphs(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back["Car"].EdgeCount() != 2 || back["Vehicle"].NodeCount() != 4 {
		t.Errorf("ReadSubGraphs = %v", back)
	}
}

func TestReadGraphErrors(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"malformed", `{`, "decode"},
		{"node kind", `{"nodes":[{"name":"A","kind":"blob"}]}`, "unknown kind"},
		{"visibility", `{"nodes":[{"name":"A","kind":"type","properties":[{"name":"p","type":"string","visibility":"secret"}]}]}`, "unknown visibility"},
		{"duplicate", `{"nodes":[{"name":"A","kind":"type"},{"name":"A","kind":"type"}]}`, "node A"},
		{"edge kind", `{"nodes":[{"name":"A","kind":"type"}],"edges":[{"from":"A","to":"A","kind":"isA"}]}`, "unknown kind"},
		{"dangling edge", `{"nodes":[{"name":"A","kind":"type"}],"edges":[{"from":"A","to":"B","kind":"allOf"}]}`, "edge A->B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGraph(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportGraph(vehicles(t), path); err != nil {
		t.Fatal(err)
	}
	g, err := ImportGraph(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.NodeCount() != 4 {
		t.Errorf("NodeCount = %d", g.NodeCount())
	}
	if _, err := ImportGraph(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
}

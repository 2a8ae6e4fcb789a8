package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/apigraph/pkg/model"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	Name                  string     `json:"name"`
	Kind                  string     `json:"kind"`
	Description           string     `json:"description,omitempty"`
	Properties            []property `json:"properties,omitempty"`
	EnumRefs              []string   `json:"enum_refs,omitempty"`
	Inheritance           []string   `json:"inheritance,omitempty"`
	Discriminators        []string   `json:"discriminators,omitempty"`
	LocalDiscriminators   []string   `json:"local_discriminators,omitempty"`
	DiscriminatorProperty string     `json:"discriminator_property,omitempty"`
	TypeTag               string     `json:"type_tag,omitempty"`
	Inline                string     `json:"inline,omitempty"`
	Simple                bool       `json:"simple,omitempty"`
	Deprecated            bool       `json:"deprecated,omitempty"`
	Values                []string   `json:"values,omitempty"`
	Nullable              bool       `json:"nullable,omitempty"`
}

type property struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Cardinality     string   `json:"cardinality,omitempty"`
	Required        bool     `json:"required,omitempty"`
	Description     string   `json:"description,omitempty"`
	Visibility      string   `json:"visibility"`
	Deprecated      bool     `json:"deprecated,omitempty"`
	Enum            bool     `json:"enum,omitempty"`
	EnumValues      []string `json:"enum_values,omitempty"`
	Nullable        bool     `json:"nullable,omitempty"`
	Default         string   `json:"default,omitempty"`
	VendorExtension bool     `json:"vendor_extension,omitempty"`
}

type edge struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Kind        string   `json:"kind"`
	Label       string   `json:"label,omitempty"`
	Cardinality string   `json:"cardinality,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	Description string   `json:"description,omitempty"`
	Marked      bool     `json:"marked,omitempty"`
	Containment bool     `json:"containment,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

func fromGraph(g *model.Graph) graph {
	out := graph{
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		nd := node{
			Name:                  n.Name,
			Kind:                  n.Kind.String(),
			Description:           n.Description,
			EnumRefs:              n.EnumRefs,
			Inheritance:           n.Inheritance.Sorted(),
			Discriminators:        n.Discriminators.Sorted(),
			LocalDiscriminators:   n.LocalDiscriminators.Sorted(),
			DiscriminatorProperty: n.DiscriminatorProperty,
			TypeTag:               n.TypeTag,
			Inline:                n.Inline,
			Simple:                n.Simple,
			Deprecated:            n.Deprecated,
			Values:                n.Values,
			Nullable:              n.Nullable,
		}
		for _, p := range n.Properties {
			nd.Properties = append(nd.Properties, property{
				Name:            p.Name,
				Type:            p.Type,
				Cardinality:     p.Cardinality,
				Required:        p.Required,
				Description:     p.Description,
				Visibility:      p.Visibility.String(),
				Deprecated:      p.Deprecated,
				Enum:            p.IsEnum,
				EnumValues:      p.EnumValues,
				Nullable:        p.Nullable,
				Default:         p.Default,
				VendorExtension: p.VendorExtension,
			})
		}
		out.Nodes = append(out.Nodes, nd)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{
			From:        e.From,
			To:          e.To,
			Kind:        e.Kind.String(),
			Label:       e.Label,
			Cardinality: e.Cardinality,
			Required:    e.Required,
			Deprecated:  e.Deprecated,
			Description: e.Description,
			Marked:      e.Marked,
			Containment: e.Containment,
			Examples:    e.Examples,
		})
	}
	return out
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraph encodes g as JSON and writes it to w. The output can be read
// back with [ReadGraph].
func WriteGraph(g *model.Graph, w io.Writer) error {
	return encode(w, fromGraph(g))
}

// WriteSubGraphs encodes a decomposition, keyed by subgraph root, as JSON.
func WriteSubGraphs(subs map[string]*model.Graph, w io.Writer) error {
	out := struct {
		SubGraphs map[string]graph `json:"subgraphs"`
	}{SubGraphs: make(map[string]graph, len(subs))}
	for name, g := range subs {
		out.SubGraphs[name] = fromGraph(g)
	}
	return encode(w, out)
}

// ExportGraph writes g to a JSON file at path.
func ExportGraph(g *model.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

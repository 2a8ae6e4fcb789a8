package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/apigraph/pkg/model"
)

var (
	nodeKinds = map[string]model.NodeKind{
		"type":          model.NodeKindType,
		"enum":          model.NodeKindEnum,
		"discriminator": model.NodeKindDiscriminator,
	}
	edgeKinds = map[string]model.EdgeKind{
		"relationship":  model.EdgeRelationship,
		"allOf":         model.EdgeAllOf,
		"oneOf":         model.EdgeOneOf,
		"discriminator": model.EdgeDiscriminator,
		"enum":          model.EdgeEnum,
	}
	visibilities = map[string]model.Visibility{
		"own":       model.VisibilityOwn,
		"inherited": model.VisibilityInherited,
		"hidden":    model.VisibilityInheritedHidden,
	}
)

// ReadGraph decodes a JSON graph written by [WriteGraph].
//
// It fails on malformed JSON, unknown node or edge kinds, duplicate node
// names and edges referencing unknown nodes. Errors name the offending node
// or edge. ReadGraph does not close r.
func ReadGraph(r io.Reader) (*model.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return toGraph(data)
}

// ReadSubGraphs decodes a decomposition written by [WriteSubGraphs].
func ReadSubGraphs(r io.Reader) (map[string]*model.Graph, error) {
	var data struct {
		SubGraphs map[string]graph `json:"subgraphs"`
	}
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	out := make(map[string]*model.Graph, len(data.SubGraphs))
	for name, sg := range data.SubGraphs {
		g, err := toGraph(sg)
		if err != nil {
			return nil, fmt.Errorf("subgraph %s: %w", name, err)
		}
		out[name] = g
	}
	return out, nil
}

func toGraph(data graph) (*model.Graph, error) {
	g := model.New()
	for _, nd := range data.Nodes {
		kind, ok := nodeKinds[nd.Kind]
		if !ok {
			return nil, fmt.Errorf("node %s: unknown kind %q", nd.Name, nd.Kind)
		}
		n := &model.Node{
			Name:                  nd.Name,
			Kind:                  kind,
			Description:           nd.Description,
			EnumRefs:              nd.EnumRefs,
			Inheritance:           optionalSet(nd.Inheritance),
			Discriminators:        optionalSet(nd.Discriminators),
			LocalDiscriminators:   optionalSet(nd.LocalDiscriminators),
			DiscriminatorProperty: nd.DiscriminatorProperty,
			TypeTag:               nd.TypeTag,
			Inline:                nd.Inline,
			Simple:                nd.Simple,
			Deprecated:            nd.Deprecated,
			Values:                nd.Values,
			Nullable:              nd.Nullable,
		}
		for _, p := range nd.Properties {
			vis, ok := visibilities[p.Visibility]
			if !ok {
				return nil, fmt.Errorf("node %s: property %s: unknown visibility %q", nd.Name, p.Name, p.Visibility)
			}
			n.Properties = append(n.Properties, model.Property{
				Name:            p.Name,
				Type:            p.Type,
				Cardinality:     p.Cardinality,
				Required:        p.Required,
				Description:     p.Description,
				Visibility:      vis,
				Deprecated:      p.Deprecated,
				IsEnum:          p.Enum,
				EnumValues:      p.EnumValues,
				Nullable:        p.Nullable,
				Default:         p.Default,
				VendorExtension: p.VendorExtension,
			})
		}
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %s: %w", nd.Name, err)
		}
	}
	for _, ed := range data.Edges {
		kind, ok := edgeKinds[ed.Kind]
		if !ok {
			return nil, fmt.Errorf("edge %s->%s: unknown kind %q", ed.From, ed.To, ed.Kind)
		}
		err := g.AddEdge(&model.Edge{
			From:        ed.From,
			To:          ed.To,
			Kind:        kind,
			Label:       ed.Label,
			Cardinality: ed.Cardinality,
			Required:    ed.Required,
			Deprecated:  ed.Deprecated,
			Description: ed.Description,
			Marked:      ed.Marked,
			Containment: ed.Containment,
			Examples:    ed.Examples,
		})
		if err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", ed.From, ed.To, err)
		}
	}
	return g, nil
}

// ImportGraph reads a JSON graph file at path.
func ImportGraph(path string) (*model.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

func optionalSet(names []string) model.NameSet {
	if len(names) == 0 {
		return nil
	}
	return model.NewNameSet(names...)
}

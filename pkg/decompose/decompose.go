package decompose

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/apigraph/pkg/complexity"
	"github.com/matzehuels/apigraph/pkg/config"
	"github.com/matzehuels/apigraph/pkg/errors"
	"github.com/matzehuels/apigraph/pkg/model"
)

// Options configures a Decomposer.
type Options struct {
	Complexity complexity.Params
	// IncludeInherited keeps leaf subtypes of an extracted node in its
	// subgraph.
	IncludeInherited bool
}

// DefaultOptions returns the options of [config.Default].
func DefaultOptions() Options {
	return Options{Complexity: complexity.DefaultParams()}
}

// OptionsFromConfig derives decomposer options from a configuration.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	params, err := complexity.ParamsFromConfig(cfg)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Complexity:       params,
		IncludeInherited: cfg.Decompose.IncludeInherited,
	}, nil
}

// Decomposer derives per-resource subgraphs from a complete graph. It never
// modifies the graph and may be used for any number of resources.
type Decomposer struct {
	g      *model.Graph
	opts   Options
	logger *log.Logger
}

// New creates a Decomposer over the complete graph g. A nil logger uses
// log.Default().
func New(g *model.Graph, opts Options, logger *log.Logger) *Decomposer {
	if logger == nil {
		logger = log.Default()
	}
	return &Decomposer{g: g, opts: opts, logger: logger}
}

// CompleteGraph returns the graph the Decomposer works on.
func (d *Decomposer) CompleteGraph() *model.Graph { return d.g }

// Score scores the pivot subgraph of resource.
func (d *Decomposer) Score(resource string) (*complexity.Result, error) {
	if !d.g.HasNode(resource) {
		return nil, errors.UnknownType("resource", resource, d.g.Names())
	}
	pivot := Extract(d.g, resource, resource, d.opts.IncludeInherited)
	return complexity.Score(pivot.Graph, resource, d.opts.Complexity)
}

// SubGraphs returns the subgraphs of resource keyed by root name. The pivot's
// own subgraph is keyed by resource.
func (d *Decomposer) SubGraphs(resource string) (map[string]*model.Graph, error) {
	subs, err := d.Decompose(resource)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*model.Graph, len(subs))
	for _, s := range subs {
		out[s.Root] = s.Graph
	}
	return out, nil
}

// Decompose returns the pruned subgraphs of resource, pivot first, followed by
// the extracted candidates in selection order and the added discriminator
// targets.
func (d *Decomposer) Decompose(resource string) ([]*Subgraph, error) {
	if !d.g.HasNode(resource) {
		return nil, errors.UnknownType("resource", resource, d.g.Names())
	}
	pivot := Extract(d.g, resource, resource, d.opts.IncludeInherited)
	score, err := complexity.Score(pivot.Graph, resource, d.opts.Complexity)
	if err != nil {
		return nil, err
	}
	if len(score.Candidates) == 0 {
		d.logger.Debug("no decomposition needed", "resource", resource, "nodes", pivot.Graph.NodeCount(), "score", score.Total)
		return []*Subgraph{pivot}, nil
	}

	subs := []*Subgraph{pivot}
	roots := model.NewNameSet(resource)
	for _, c := range score.Candidates {
		subs = append(subs, Extract(pivot.Graph, c, resource, d.opts.IncludeInherited))
		roots.Add(c)
	}
	subs = d.addDispatchTargets(resource, subs, roots)
	subs = prune(subs, resource)

	d.logger.Debug("decomposed resource",
		"resource", resource,
		"score", score.Total,
		"candidates", len(score.Candidates),
		"subgraphs", len(subs))
	return subs, nil
}

// addDispatchTargets adds subgraphs for discriminator-mapped types reachable
// from resource that no subgraph covers. A target with a single non-allOf
// source mapping more than two types is represented by that source's
// subgraph; any other target gets its own subgraph if it has edges.
func (d *Decomposer) addDispatchTargets(resource string, subs []*Subgraph, roots model.NameSet) []*Subgraph {
	covered := model.NewNameSet()
	for _, s := range subs {
		covered.AddAll(s.Graph.NameSet())
	}

	for _, name := range d.g.Reachable(resource) {
		n, _ := d.g.Node(name)
		for _, target := range n.LocalDiscriminators.Sorted() {
			if covered.Has(target) || !d.g.HasNode(target) {
				continue
			}
			root := target
			if src, ok := d.soleSource(target); ok {
				if s, _ := d.g.Node(src); s.LocalDiscriminators.Len() > 2 {
					root = src
				}
			}
			if root == target && d.g.OutDegree(target) == 0 {
				continue
			}
			if roots.Has(root) {
				continue
			}
			sub := Extract(d.g, root, resource, d.opts.IncludeInherited)
			d.logger.Debug("adding dispatch target", "target", target, "root", root, "nodes", sub.Graph.NodeCount())
			subs = append(subs, sub)
			roots.Add(root)
			covered.AddAll(sub.Graph.NameSet())
		}
	}
	return subs
}

// soleSource returns the only node referencing target through an edge other
// than an inheriting allOf.
func (d *Decomposer) soleSource(target string) (string, bool) {
	sources := model.NewNameSet()
	for _, e := range d.g.InEdges(target) {
		if e.Kind != model.EdgeAllOf || !e.IsInheritance() {
			sources.Add(e.From)
		}
	}
	if sources.Len() != 1 {
		return "", false
	}
	return sources.Sorted()[0], true
}

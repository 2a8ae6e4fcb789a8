package complexity

import (
	"cmp"
	"slices"

	"github.com/matzehuels/apigraph/pkg/config"
	"github.com/matzehuels/apigraph/pkg/errors"
	"github.com/matzehuels/apigraph/pkg/model"
)

// Params are the scorer's tuning constants.
type Params struct {
	LowThreshold         float64
	HighThreshold        float64
	MaxDiagramComplexity float64
	MinSubgraphSize      int
	// Wrappers never count as simple prefixes.
	Wrappers *config.Matcher
	// Resources are exempt from the minimum subgraph size.
	Resources *config.Matcher
}

// DefaultParams returns the parameters of [config.Default].
func DefaultParams() Params {
	p, _ := ParamsFromConfig(config.Default())
	return p
}

// ParamsFromConfig derives scorer parameters from a configuration.
func ParamsFromConfig(cfg config.Config) (Params, error) {
	m, err := cfg.Matchers()
	if err != nil {
		return Params{}, err
	}
	cx := cfg.Complexity
	return Params{
		LowThreshold:         cx.LowThreshold,
		HighThreshold:        cx.HighThreshold,
		MaxDiagramComplexity: cx.MaxDiagramComplexity,
		MinSubgraphSize:      cx.MinSubgraphSize,
		Wrappers:             m.Wrappers,
		Resources:            m.Resources,
	}, nil
}

// Exclusion tells why a node carries no contribution.
type Exclusion int

const (
	Included     Exclusion = iota
	Unreachable            // no path from the pivot
	SimplePrefix           // passes references through
	TooSmall               // reachable subgraph below the minimum size
)

func (e Exclusion) String() string {
	switch e {
	case Included:
		return "included"
	case Unreachable:
		return "unreachable"
	case SimplePrefix:
		return "simple prefix"
	case TooSmall:
		return "too small"
	default:
		return "unknown"
	}
}

// NodeScore is the score breakdown of one node.
type NodeScore struct {
	Name           string
	Shortest       int
	Longest        int
	Size           int // nodes reachable from this node, itself included
	Neighbors      int // distinct predecessors and successors
	Discriminators int // distinct discriminator targets
	FanOut         int
	Contribution   float64
	Excluded       Exclusion
}

// Result is the outcome of scoring one pivot.
type Result struct {
	Pivot         string
	Total         float64
	LowThreshold  float64
	HighThreshold float64
	// Nodes lists every node of the scored graph by descending contribution,
	// ties broken by name.
	Nodes []NodeScore
	// Candidates are the nodes to extract, in selection order.
	Candidates []string

	byName map[string]int
}

// NonTrivial reports whether the total exceeds the low threshold.
func (r *Result) NonTrivial() bool { return r.Total > r.LowThreshold }

// MustDecompose reports whether the total exceeds the high threshold.
func (r *Result) MustDecompose() bool { return r.Total > r.HighThreshold }

// Node returns the score of name.
func (r *Result) Node(name string) (NodeScore, bool) {
	i, ok := r.byName[name]
	if !ok {
		return NodeScore{}, false
	}
	return r.Nodes[i], true
}

// Contribution returns the contribution of name, or zero.
func (r *Result) Contribution(name string) float64 {
	s, _ := r.Node(name)
	return s.Contribution
}

// Simplify returns the subgraph of g without simple-type nodes. Nodes named
// in keep stay regardless.
func Simplify(g *model.Graph, keep ...string) *model.Graph {
	names := model.NewNameSet()
	for _, n := range g.Nodes() {
		if !n.Simple || slices.Contains(keep, n.Name) {
			names.Add(n.Name)
		}
	}
	return g.Induced(names)
}

// Score scores the graph rooted at pivot. g is not modified.
func Score(g *model.Graph, pivot string, p Params) (*Result, error) {
	if !g.HasNode(pivot) {
		return nil, errors.UnknownType("pivot", pivot, g.Names())
	}
	work := Simplify(g, pivot)
	paths := PathLengths(work, pivot)

	r := &Result{
		Pivot:         pivot,
		LowThreshold:  p.LowThreshold,
		HighThreshold: p.HighThreshold,
	}
	for _, n := range work.Nodes() {
		s := score(work, n, pivot, paths, p)
		r.Total += s.Contribution
		r.Nodes = append(r.Nodes, s)
	}
	slices.SortFunc(r.Nodes, func(a, b NodeScore) int {
		if c := cmp.Compare(b.Contribution, a.Contribution); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	r.byName = make(map[string]int, len(r.Nodes))
	for i, s := range r.Nodes {
		r.byName[s.Name] = i
	}
	if r.MustDecompose() {
		r.Candidates = candidates(work, r)
	}
	return r, nil
}

func score(g *model.Graph, n *model.Node, pivot string, paths Paths, p Params) NodeScore {
	s := NodeScore{Name: n.Name}
	if !paths.Has(n.Name) {
		s.Excluded = Unreachable
		return s
	}
	s.Shortest = paths.Shortest[n.Name]
	s.Longest = paths.Longest[n.Name]

	succ := model.NewNameSet(g.Successors(n.Name)...)
	pred := model.NewNameSet(g.Predecessors(n.Name)...)
	disc := model.NewNameSet()
	for _, e := range g.OutEdges(n.Name) {
		if e.IsDiscriminator() {
			disc.Add(e.To)
		}
	}
	s.Discriminators = disc.Len()
	s.Size = len(g.Reachable(n.Name))

	if n.Name != pivot && simplePrefix(g, n.Name, succ, disc, p) {
		s.Excluded = SimplePrefix
		return s
	}

	all := succ.Clone()
	all.AddAll(pred)
	s.Neighbors = all.Len()

	s.FanOut = 1
	if g.InDegree(n.Name)+g.OutDegree(n.Name) >= 3 {
		diff := 0
		for name := range succ {
			if !pred.Has(name) {
				diff++
			}
		}
		s.FanOut = s.Discriminators + diff
	}

	sizeFactor := 1
	if s.Size >= 4 {
		sizeFactor = s.Size + 1
	}

	s.Contribution = float64(1+s.Longest*s.Shortest) *
		float64(sizeFactor) *
		float64(s.Neighbors+s.Discriminators) *
		float64(s.FanOut)

	if n.Name != pivot && s.Size < p.MinSubgraphSize && !p.Resources.Match(n.Name) {
		s.Contribution = 0
		s.Excluded = TooSmall
	}
	if n.Name == pivot && s.Contribution == 0 {
		s.Contribution = p.MaxDiagramComplexity
	}
	return s
}

// simplePrefix reports whether name merely forwards to few successors. A node
// whose outgoing edges are all inheritance edges is never a simple prefix.
func simplePrefix(g *model.Graph, name string, succ, disc model.NameSet, p Params) bool {
	out := g.OutEdges(name)
	if len(out) > 0 && !slices.ContainsFunc(out, func(e *model.Edge) bool { return !e.IsInheritance() }) {
		return false
	}
	if disc.Len() > 0 || p.Wrappers.Match(name) {
		return false
	}

	nonEnum, nonLeaf := 0, 0
	for target := range succ {
		if t, ok := g.Node(target); ok && !t.IsEnum() {
			nonEnum++
		}
		if g.OutDegree(target) > 0 {
			nonLeaf++
		}
	}
	return nonEnum < 3 || nonLeaf == 1
}

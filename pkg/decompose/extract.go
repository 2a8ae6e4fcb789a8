package decompose

import (
	"slices"

	"github.com/matzehuels/apigraph/pkg/model"
)

// Subgraph is one extracted diagram.
type Subgraph struct {
	// Root is the node the subgraph was extracted for.
	Root  string
	Graph *model.Graph
	// Protected nodes survive orphan and reachability pruning.
	Protected model.NameSet
}

// Extract builds the inheritance-aware reachable subgraph of node within g.
// root names the requested resource; extracting the resource itself
// (node == root) is pivot extraction.
//
// The subgraph holds everything reachable from node plus the superclasses of
// every reachable leaf. Simple-type nodes other than node and root are
// removed. Pivot extraction does not follow oneOf edges into dispatch targets
// or discriminator edges the target does not answer. Other extractions drop
// leaves inheriting from node unless includeInherited is set, in which case
// they are protected instead. Nodes without an inbound edge, and nodes no
// longer reachable from node, are removed unless protected.
func Extract(g *model.Graph, node, root string, includeInherited bool) *Subgraph {
	sub := &Subgraph{Root: node, Protected: model.NewNameSet()}
	if !g.HasNode(node) {
		sub.Graph = model.New()
		return sub
	}

	pivot := node == root
	var follow func(*model.Edge) bool
	if pivot {
		follow = pivotFollow(g)
	}
	members := model.NewNameSet(g.ReachableFunc(node, follow)...)

	for _, name := range members.Sorted() {
		if !leafLike(g, name) {
			continue
		}
		n, _ := g.Node(name)
		for _, super := range n.Inheritance.Sorted() {
			if g.HasNode(super) && !members.Has(super) {
				members.Add(super)
				sub.Protected.Add(super)
			}
		}
	}

	for _, name := range members.Sorted() {
		if name == node || name == root {
			continue
		}
		n, _ := g.Node(name)
		if n.Simple {
			members.Remove(name)
			sub.Protected.Remove(name)
			continue
		}
		if !pivot && n.InheritsFrom(node) && leafLike(g, name) {
			if includeInherited {
				sub.Protected.Add(name)
			} else {
				members.Remove(name)
				sub.Protected.Remove(name)
			}
		}
	}

	sub.Graph = g.Induced(members)
	sub.stripOrphans(node)
	sub.dropUnreachable()
	return sub
}

// pivotFollow returns the edge filter of pivot extraction.
func pivotFollow(g *model.Graph) func(*model.Edge) bool {
	dispatched := model.NewNameSet()
	for _, n := range g.Nodes() {
		dispatched.AddAll(n.Discriminators)
	}
	return func(e *model.Edge) bool {
		switch {
		case !e.IsInheritance():
			return true
		case e.Kind == model.EdgeOneOf:
			return !dispatched.Has(e.To)
		case e.IsDiscriminator():
			return slices.ContainsFunc(g.OutEdges(e.To), func(r *model.Edge) bool { return r.To == e.From })
		default:
			return true
		}
	}
}

// leafLike reports whether name only points at enums and at the types it
// inherits from.
func leafLike(g *model.Graph, name string) bool {
	n, ok := g.Node(name)
	if !ok {
		return false
	}
	for _, e := range g.OutEdges(name) {
		if e.IsInheritance() && n.InheritsFrom(e.To) {
			continue
		}
		if t, ok := g.Node(e.To); !ok || !t.IsEnum() {
			return false
		}
	}
	return true
}

// stripOrphans repeatedly removes nodes without inbound edges, sparing the
// subgraph root, the given roots and protected nodes. It returns the number
// of nodes removed.
func (s *Subgraph) stripOrphans(roots ...string) int {
	removed := 0
	for {
		var orphans []string
		for _, name := range s.Graph.Names() {
			if name == s.Root || s.Protected.Has(name) || s.Graph.InDegree(name) > 0 {
				continue
			}
			if !slices.Contains(roots, name) {
				orphans = append(orphans, name)
			}
		}
		if len(orphans) == 0 {
			return removed
		}
		for _, name := range orphans {
			s.Graph.RemoveNode(name)
		}
		removed += len(orphans)
	}
}

// dropUnreachable removes nodes not reachable from the root within the
// subgraph unless protected. It reports whether anything was removed.
func (s *Subgraph) dropUnreachable() bool {
	reach := model.NewNameSet(s.Graph.Reachable(s.Root)...)
	removed := false
	for _, name := range s.Graph.Names() {
		if !reach.Has(name) && !s.Protected.Has(name) {
			s.Graph.RemoveNode(name)
			removed = true
		}
	}
	return removed
}

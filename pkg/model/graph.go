package model

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeName is returned by [Graph.AddNode] when the node name is
	// empty.
	ErrInvalidNodeName = errors.New("node name must not be empty")

	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the
	// same name already exists.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrUnknownSource is returned by [Graph.AddEdge] when the From node does
	// not exist.
	ErrUnknownSource = errors.New("unknown source node")

	// ErrUnknownTarget is returned by [Graph.AddEdge] when the To node does
	// not exist.
	ErrUnknownTarget = errors.New("unknown target node")
)

// Graph is a directed multigraph of schema types.
//
// Node iteration follows insertion order and edge iteration follows edge
// insertion order, so every traversal is deterministic for a deterministic
// construction sequence.
//
// The zero value is not usable; use [New].
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []*Edge
	out   map[string][]*Edge
	in    map[string][]*Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		out:   make(map[string][]*Edge),
		in:    make(map[string][]*Edge),
	}
}

// AddNode adds n to the graph.
func (g *Graph) AddNode(n *Node) error {
	if n == nil || n.Name == "" {
		return ErrInvalidNodeName
	}
	if _, ok := g.nodes[n.Name]; ok {
		return ErrDuplicateNode
	}
	g.nodes[n.Name] = n
	g.order = append(g.order, n.Name)
	return nil
}

// Node returns the node with the given name.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// HasNode reports whether the graph contains a node called name.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, name := range g.order {
		nodes[i] = g.nodes[name]
	}
	return nodes
}

// Names returns the node names in insertion order.
func (g *Graph) Names() []string { return slices.Clone(g.order) }

// NameSet returns the vertex set.
func (g *Graph) NameSet() NameSet { return NewNameSet(g.order...) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddEdge appends e. Parallel edges and self-loops are allowed.
func (g *Graph) AddEdge(e *Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSource
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTarget
	}
	g.edges = append(g.edges, e)
	g.out[e.From] = append(g.out[e.From], e)
	g.in[e.To] = append(g.in[e.To], e)
	return nil
}

// FindEdge returns the edge with the given key, or nil.
func (g *Graph) FindEdge(key EdgeKey) *Edge {
	for _, e := range g.out[key.From] {
		if e.Key() == key {
			return e
		}
	}
	return nil
}

// EnsureEdge adds e unless an edge with the same key exists. It returns the
// edge stored in the graph and whether e was added.
func (g *Graph) EnsureEdge(e *Edge) (*Edge, bool, error) {
	if existing := g.FindEdge(e.Key()); existing != nil {
		return existing, false, nil
	}
	if err := g.AddEdge(e); err != nil {
		return nil, false, err
	}
	return e, true, nil
}

// RemoveEdge removes e, compared by identity. Removing an absent edge is a
// no-op.
func (g *Graph) RemoveEdge(e *Edge) {
	same := func(o *Edge) bool { return o == e }
	g.edges = slices.DeleteFunc(g.edges, same)
	g.out[e.From] = slices.DeleteFunc(g.out[e.From], same)
	g.in[e.To] = slices.DeleteFunc(g.in[e.To], same)
}

// RemoveOutEdges removes every edge leaving name and returns how many were
// removed.
func (g *Graph) RemoveOutEdges(name string) int {
	out := slices.Clone(g.out[name])
	for _, e := range out {
		g.RemoveEdge(e)
	}
	return len(out)
}

// RemoveNode removes the node and all incident edges.
func (g *Graph) RemoveNode(name string) {
	if _, ok := g.nodes[name]; !ok {
		return
	}
	incident := func(e *Edge) bool { return e.From == name || e.To == name }
	for _, e := range g.out[name] {
		g.in[e.To] = slices.DeleteFunc(g.in[e.To], incident)
	}
	for _, e := range g.in[name] {
		g.out[e.From] = slices.DeleteFunc(g.out[e.From], incident)
	}
	g.edges = slices.DeleteFunc(g.edges, incident)
	delete(g.out, name)
	delete(g.in, name)
	delete(g.nodes, name)
	g.order = slices.DeleteFunc(g.order, func(s string) bool { return s == name })
}

// Edges returns the edges in insertion order. The slice is a copy; the edge
// records are shared.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// OutEdges returns the edges leaving name. Do not modify the slice.
func (g *Graph) OutEdges(name string) []*Edge { return g.out[name] }

// InEdges returns the edges entering name. Do not modify the slice.
func (g *Graph) InEdges(name string) []*Edge { return g.in[name] }

// OutDegree returns the number of edges leaving name.
func (g *Graph) OutDegree(name string) int { return len(g.out[name]) }

// InDegree returns the number of edges entering name.
func (g *Graph) InDegree(name string) int { return len(g.in[name]) }

// Successors returns the distinct targets of edges leaving name, in edge
// order.
func (g *Graph) Successors(name string) []string {
	return distinct(g.out[name], func(e *Edge) string { return e.To })
}

// Predecessors returns the distinct sources of edges entering name, in edge
// order.
func (g *Graph) Predecessors(name string) []string {
	return distinct(g.in[name], func(e *Edge) string { return e.From })
}

func distinct(edges []*Edge, end func(*Edge) string) []string {
	var result []string
	seen := make(map[string]bool, len(edges))
	for _, e := range edges {
		n := end(e)
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	return result
}

// EdgesBetween returns the edges connecting a and b in either direction.
func (g *Graph) EdgesBetween(a, b string) []*Edge {
	var result []*Edge
	for _, e := range g.out[a] {
		if e.To == b {
			result = append(result, e)
		}
	}
	if a == b {
		return result
	}
	for _, e := range g.out[b] {
		if e.To == a {
			result = append(result, e)
		}
	}
	return result
}

// Reachable returns every node reachable from start, including start, in
// breadth-first order. It returns nil if start is not in the graph.
func (g *Graph) Reachable(start string) []string {
	return g.ReachableFunc(start, nil)
}

// ReachableFunc is like [Graph.Reachable] but only follows edges for which
// follow returns true. A nil follow follows every edge.
func (g *Graph) ReachableFunc(start string, follow func(*Edge) bool) []string {
	if !g.HasNode(start) {
		return nil
	}
	seen := NewNameSet(start)
	queue := []string{start}
	for i := 0; i < len(queue); i++ {
		for _, e := range g.out[queue[i]] {
			if follow != nil && !follow(e) {
				continue
			}
			if !seen.Has(e.To) {
				seen.Add(e.To)
				queue = append(queue, e.To)
			}
		}
	}
	return queue
}

// Clone returns a copy with independent membership sharing node and edge
// records.
func (g *Graph) Clone() *Graph {
	c := New()
	for _, name := range g.order {
		_ = c.AddNode(g.nodes[name])
	}
	for _, e := range g.edges {
		_ = c.AddEdge(e)
	}
	return c
}

// Induced returns the subgraph induced by names: every listed node present in
// g and every edge with both endpoints listed. Node order follows g.
func (g *Graph) Induced(names NameSet) *Graph {
	c := New()
	for _, name := range g.order {
		if names.Has(name) {
			_ = c.AddNode(g.nodes[name])
		}
	}
	for _, e := range g.edges {
		if names.Has(e.From) && names.Has(e.To) {
			_ = c.AddEdge(e)
		}
	}
	return c
}

// Contains reports whether every node and every edge of other is also part of
// g. Edges are compared by key.
func (g *Graph) Contains(other *Graph) bool {
	for _, name := range other.order {
		if !g.HasNode(name) {
			return false
		}
	}
	for _, e := range other.edges {
		if g.FindEdge(e.Key()) == nil {
			return false
		}
	}
	return true
}

package complexity

import "github.com/matzehuels/apigraph/pkg/model"

// Paths holds path lengths, in edges, from a pivot to every node reachable
// from it.
type Paths struct {
	Shortest map[string]int
	Longest  map[string]int
}

// Has reports whether name has a defined path from the pivot.
func (p Paths) Has(name string) bool {
	_, ok := p.Shortest[name]
	return ok
}

// PathLengths computes shortest and longest path lengths from pivot.
//
// Shortest paths come from a breadth-first search. Longest paths are taken
// over the acyclic part of the reachable graph: a depth-first search from the
// pivot discards back edges, then a topological pass relaxes every remaining
// edge. Parallel edges count once per edge for in-degree but never lengthen a
// path.
func PathLengths(g *model.Graph, pivot string) Paths {
	p := Paths{Shortest: make(map[string]int), Longest: make(map[string]int)}
	if !g.HasNode(pivot) {
		return p
	}

	reach := g.Reachable(pivot)
	for _, name := range reach {
		p.Shortest[name] = -1
	}
	p.Shortest[pivot] = 0
	for _, name := range reach {
		for _, e := range g.OutEdges(name) {
			if p.Shortest[e.To] < 0 {
				p.Shortest[e.To] = p.Shortest[name] + 1
			}
		}
	}

	back := backEdges(g, pivot)
	inDegree := make(map[string]int, len(reach))
	for _, name := range reach {
		for _, e := range g.OutEdges(name) {
			if !back[e] {
				inDegree[e.To]++
			}
		}
	}

	queue := []string{pivot}
	p.Longest[pivot] = 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, e := range g.OutEdges(curr) {
			if back[e] {
				continue
			}
			if l := p.Longest[curr] + 1; l > p.Longest[e.To] {
				p.Longest[e.To] = l
			}
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}
	return p
}

// backEdges returns the edges closing a cycle in a depth-first search from
// start.
func backEdges(g *model.Graph, start string) map[*model.Edge]bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	back := make(map[*model.Edge]bool)

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, e := range g.OutEdges(node) {
			switch color[e.To] {
			case white:
				dfs(e.To)
			case gray:
				back[e] = true
			}
		}
		color[node] = black
	}
	dfs(start)
	return back
}

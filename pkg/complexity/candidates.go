package complexity

import "github.com/matzehuels/apigraph/pkg/model"

// candidates walks r.Nodes in contribution order and collects cut points
// until the running total drops to the high threshold. Each selected node
// claims the contributions of its subtree so they are subtracted only once.
func candidates(g *model.Graph, r *Result) []string {
	running := r.Total
	claimed := model.NewNameSet()
	var out []string
	for _, s := range r.Nodes {
		if running <= r.HighThreshold {
			break
		}
		if s.Name == r.Pivot || s.Contribution <= 0 || claimed.Has(s.Name) {
			continue
		}
		subtree := g.Reachable(s.Name)
		if !isCutPoint(g, r.Pivot, s.Name, subtree) {
			continue
		}
		for _, name := range subtree {
			if name == r.Pivot || claimed.Has(name) {
				continue
			}
			claimed.Add(name)
			running -= r.Contribution(name)
		}
		out = append(out, s.Name)
	}
	return out
}

// isCutPoint reports whether node is entered from outside its own subtree and
// removing it disconnects part of that subtree from the pivot.
func isCutPoint(g *model.Graph, pivot, node string, subtree []string) bool {
	inner := model.NewNameSet(subtree...)
	entered := false
	for _, from := range g.Predecessors(node) {
		if !inner.Has(from) {
			entered = true
			break
		}
	}
	if !entered {
		return false
	}

	rest := model.NewNameSet(g.ReachableFunc(pivot, func(e *model.Edge) bool { return e.To != node })...)
	for _, name := range subtree {
		if name != node && !rest.Has(name) {
			return true
		}
	}
	return false
}

package decompose

// prune reduces subs to a fixed point. Each pass
//
//   - cuts every other subgraph's root out of the subgraphs containing it:
//     the root's outgoing edges are removed and the nodes left without an
//     inbound edge are stripped,
//   - removes nodes no longer reachable from their subgraph's root,
//   - drops subgraphs wholly contained in another retained one.
//
// The pivot subgraph is never dropped, and its root is never cut out of
// other subgraphs.
func prune(subs []*Subgraph, pivot string) []*Subgraph {
	for {
		changed := false
		for _, k := range subs {
			if k.Root == pivot {
				continue
			}
			for _, p := range subs {
				if p != k && p.cut(k.Root) {
					changed = true
				}
			}
		}
		for _, s := range subs {
			if s.dropUnreachable() {
				changed = true
			}
		}

		kept := make([]*Subgraph, 0, len(subs))
		for i, s := range subs {
			if s.Root != pivot && (containedIn(s, kept) || containedIn(s, subs[i+1:])) {
				changed = true
				continue
			}
			kept = append(kept, s)
		}
		subs = kept

		if !changed {
			return subs
		}
	}
}

// cut removes the branch below root from s. It reports whether s changed.
func (s *Subgraph) cut(root string) bool {
	if root == s.Root || !s.Graph.HasNode(root) {
		return false
	}
	edges := s.Graph.RemoveOutEdges(root)
	nodes := s.stripOrphans(root)
	return edges+nodes > 0
}

func containedIn(s *Subgraph, others []*Subgraph) bool {
	for _, o := range others {
		if o != s && o.Graph.Contains(s.Graph) {
			return true
		}
	}
	return false
}

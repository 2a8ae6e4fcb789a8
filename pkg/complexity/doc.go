// Package complexity scores how hard a pivot-rooted type graph is to read as
// a single diagram and picks the nodes worth splitting into diagrams of their
// own.
//
// # Scoring
//
// [Score] works on a copy of the graph with simple-type nodes removed. For
// every node reachable from the pivot it computes the shortest and the
// longest path length from the pivot and, unless the node is excluded, a
// contribution:
//
//	(1 + longest*shortest) * sizeFactor * (neighbors + discriminators) * fanOut
//
// sizeFactor is 1 for nodes whose own reachable subgraph has fewer than four
// nodes and size+1 otherwise. fanOut is 1 for nodes of total degree below
// three and otherwise the number of discriminator targets plus the number of
// successors that are not also predecessors.
//
// Nodes that only pass references through ("simple prefixes") are excluded.
// Nodes whose reachable subgraph is smaller than the configured minimum score
// zero unless they are recognized resources. The pivot is always scored and
// never scores zero.
//
// # Candidates
//
// When the total exceeds the high threshold, [Result.Candidates] lists the
// cut points to extract: nodes taken in descending contribution order whose
// removal disconnects part of their subtree from the pivot, each subtracting
// its subtree's contributions from the running total until the total is at or
// below the high threshold.
//
// Absolute scores carry no meaning outside this package; only their relation
// to the thresholds does.
package complexity

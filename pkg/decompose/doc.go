// Package decompose splits the type graph around a resource into subgraphs
// small enough to draw.
//
// A [Decomposer] wraps the complete graph produced by the builder. For a
// requested resource (the pivot) it
//
//  1. extracts the pivot's inheritance-aware reachable subgraph ([Extract]),
//  2. scores it with package complexity and, if the score demands it,
//     extracts one subgraph per selected candidate,
//  3. adds subgraphs for discriminator-mapped types no subgraph covers,
//  4. prunes the set to a fixed point: contained subgraphs are dropped,
//     branches owned by another subgraph are cut, and orphaned or
//     unreachable nodes are removed.
//
// The complete graph is never modified. Subgraphs share node and edge records
// with it and own only their membership.
package decompose

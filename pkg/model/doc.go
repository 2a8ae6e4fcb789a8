// Package model provides the type-relationship graph that apigraph builds from
// resolved API schema facts.
//
// # Overview
//
// Every named schema type becomes a [Node]. Relationships between types are
// directed, typed [Edge] values held in a [Graph], a directed multigraph that
// allows parallel edges of different kinds between the same pair of nodes
// and self-loops.
//
// # Node Kinds
//
// Nodes form a small closed set of variants distinguished by [NodeKind]:
//
//   - [NodeKindType]: an ordinary object type with properties
//   - [NodeKindEnum]: an enumeration carrying ordered literal values
//   - [NodeKindDiscriminator]: a synthesized dispatch hub
//
// Node identity is the type name. A graph holds at most one node per name.
//
// # Edge Kinds
//
// Edges are classified by [EdgeKind]:
//
//   - [EdgeRelationship]: a property referencing another complex type
//   - [EdgeAllOf]: structural inheritance, the source extends the target
//   - [EdgeOneOf]: exclusive-alternative membership
//   - [EdgeDiscriminator]: polymorphic dispatch from a base to a mapped type
//   - [EdgeEnum]: a property referencing an enumeration
//
// AllOf, OneOf and Discriminator edges are structural. A structural edge whose
// target is configured for containment has [Edge.Containment] set and then
// behaves as an ordinary relationship; see [Edge.IsInheritance].
//
// # Subgraphs
//
// The builder produces exactly one complete graph. Derived views are created
// with [Graph.Clone] and [Graph.Induced]; they share the *Node and *Edge
// records of the complete graph and only differ in vertex and edge
// membership. Code operating on a derived view must never mutate shared node
// or edge attributes.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. A fully constructed graph
// may be read from several goroutines as long as nobody mutates it.
package model

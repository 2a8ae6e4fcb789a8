// Package builder constructs the complete type-relationship graph from
// resolved schema facts.
//
// # Phases
//
// [Builder.Build] runs strictly ordered phases. Each phase only starts once
// the previous one has finished, and nothing mutates node attributes after
// Build returns:
//
//  1. Wiring: every declared type becomes a node (memoized by name, enum
//     types become enum nodes). Properties produce relationship and enum
//     edges, allOf branches produce AllOf edges or are flattened, oneOf
//     alternatives produce OneOf edges, and discriminator mappings with more
//     than one entry produce Discriminator edges.
//  2. Inline suppression: anonymous definitions lose all outgoing edges.
//  3. Transitive inheritance sets.
//  4. Transitive discriminator sets.
//  5. Redundancy marking of discriminator edges paralleled by another edge.
//  6. Optional default type tags for dispatch targets.
//
// # Flattening
//
// An allOf branch whose target matches the configured flatten list and is not
// an enum is recorded in the inheritance set instead of producing an AllOf
// edge. With merging enabled, the target's properties are copied into the
// referencing type as inherited properties, recursively through the target's
// own flattened ancestors, wiring any enum or relationship edges they bring.
//
// # Failure Semantics
//
// Construction never fails on a single bad definition. Unresolvable
// references are logged and dropped; untyped properties get
// [model.UnknownType], logged once per distinct shape.
package builder

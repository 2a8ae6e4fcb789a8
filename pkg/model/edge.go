package model

// EdgeKind classifies a relationship between two types.
type EdgeKind int

const (
	// EdgeRelationship is a property referencing a complex type.
	EdgeRelationship EdgeKind = iota
	// EdgeAllOf is structural inheritance: the source extends the target.
	EdgeAllOf
	// EdgeOneOf is exclusive-alternative membership.
	EdgeOneOf
	// EdgeDiscriminator is polymorphic dispatch to a mapped type.
	EdgeDiscriminator
	// EdgeEnum is a property referencing an enumeration.
	EdgeEnum
)

// String returns the kind name used in exports and diagnostics.
func (k EdgeKind) String() string {
	switch k {
	case EdgeAllOf:
		return "allOf"
	case EdgeOneOf:
		return "oneOf"
	case EdgeDiscriminator:
		return "discriminator"
	case EdgeEnum:
		return "enum"
	default:
		return "relationship"
	}
}

// Structural reports whether the kind is AllOf, OneOf or Discriminator.
func (k EdgeKind) Structural() bool {
	return k == EdgeAllOf || k == EdgeOneOf || k == EdgeDiscriminator
}

// Edge is a directed, typed relationship From → To.
type Edge struct {
	From string
	To   string
	Kind EdgeKind

	// Label is the property name for relationship and enum edges.
	Label       string
	Cardinality string
	Required    bool
	Deprecated  bool
	Description string

	// Marked is set on a Discriminator edge and on any non-discriminator
	// edge between the same pair, in either direction.
	Marked bool
	// Containment is set on a structural edge whose target is configured to
	// be treated as ordinary containment.
	Containment bool

	Examples []string
}

// EdgeKey identifies an edge for deduplication.
type EdgeKey struct {
	From  string
	To    string
	Kind  EdgeKind
	Label string
}

// Key returns the deduplication key of the edge.
func (e *Edge) Key() EdgeKey {
	return EdgeKey{From: e.From, To: e.To, Kind: e.Kind, Label: e.Label}
}

// IsInheritance reports whether the edge takes part in inheritance and
// dispatch for decomposition purposes.
func (e *Edge) IsInheritance() bool {
	return e.Kind.Structural() && !e.Containment
}

// IsDiscriminator reports whether the edge dispatches to a mapped type.
func (e *Edge) IsDiscriminator() bool {
	return e.Kind == EdgeDiscriminator && !e.Containment
}

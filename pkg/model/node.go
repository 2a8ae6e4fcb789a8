package model

// NodeKind distinguishes the node variants.
type NodeKind int

const (
	// NodeKindType is an ordinary schema type.
	NodeKindType NodeKind = iota
	// NodeKindEnum is an enumeration; see [Node.Values] and [Node.Nullable].
	NodeKindEnum
	// NodeKindDiscriminator is a synthesized dispatch hub. The builder does
	// not create these; the kind exists so renderers can model one.
	NodeKindDiscriminator
)

// String returns the lower-case kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeKindEnum:
		return "enum"
	case NodeKindDiscriminator:
		return "discriminator"
	default:
		return "type"
	}
}

// Visibility describes where a property comes from and whether renderers
// should show it.
type Visibility int

const (
	// VisibilityOwn marks a property declared on the type itself.
	VisibilityOwn Visibility = iota
	// VisibilityInherited marks a property merged from a flattened ancestor.
	VisibilityInherited
	// VisibilityInheritedHidden marks a merged property renderers should omit.
	VisibilityInheritedHidden
)

// String returns the lower-case visibility name.
func (v Visibility) String() string {
	switch v {
	case VisibilityInherited:
		return "inherited"
	case VisibilityInheritedHidden:
		return "hidden"
	default:
		return "own"
	}
}

// UnknownType is substituted for a property whose type could not be
// determined.
const UnknownType = "unknown"

// Property is an attribute of exactly one [Node].
type Property struct {
	Name        string
	Type        string
	Cardinality string
	Required    bool
	Description string
	Visibility  Visibility
	Deprecated  bool

	// IsEnum is set when the property is typed by an enumeration, either a
	// named enum type or inline literal values.
	IsEnum     bool
	EnumValues []string

	Nullable bool
	Default  string

	// VendorExtension marks x- prefixed extension attributes.
	VendorExtension bool
}

// Visible reports whether renderers should show the property.
func (p Property) Visible() bool { return p.Visibility != VisibilityInheritedHidden }

// Node is a schema type in the graph. Identity is by Name only.
//
// Nodes are created once per distinct name and mutated only while the graph
// is being built. Afterwards they are shared, read-only records.
type Node struct {
	Name        string
	Description string
	Kind        NodeKind
	Properties  []Property

	// EnumRefs lists referenced enum type names in discovery order.
	EnumRefs []string

	// Inheritance holds the transitive ancestor names, flattened and linked.
	// Nil when the type inherits from nothing.
	Inheritance NameSet
	// Discriminators holds every dispatch target transitively reachable
	// through the type's own mapping and its ancestors' mappings. Nil when
	// empty.
	Discriminators NameSet
	// LocalDiscriminators holds the targets of the type's own mapping.
	LocalDiscriminators NameSet

	// DiscriminatorProperty names the tag property of a polymorphic base.
	DiscriminatorProperty string
	// TypeTag is the tag value selecting this type in a polymorphic base.
	TypeTag string

	// Inline is the literal rendering of an anonymous definition. Inline
	// nodes never have outgoing edges.
	Inline string

	// Simple marks scalar-like types that are attributes, not diagram boxes.
	Simple     bool
	Deprecated bool

	// Values and Nullable are only meaningful for NodeKindEnum.
	Values   []string
	Nullable bool
}

// NewNode returns an ordinary type node.
func NewNode(name string) *Node {
	return &Node{Name: name, Kind: NodeKindType}
}

// NewEnumNode returns an enumeration node with the given literals.
func NewEnumNode(name string, values []string, nullable bool) *Node {
	return &Node{Name: name, Kind: NodeKindEnum, Values: values, Nullable: nullable}
}

// NewDiscriminatorNode returns a dispatch hub node for the given property.
func NewDiscriminatorNode(name, property string) *Node {
	return &Node{Name: name, Kind: NodeKindDiscriminator, DiscriminatorProperty: property}
}

// IsEnum reports whether the node is an enumeration.
func (n *Node) IsEnum() bool { return n.Kind == NodeKindEnum }

// IsInline reports whether the node renders as a literal type.
func (n *Node) IsInline() bool { return n.Inline != "" }

// InheritsFrom reports whether name is in the node's inheritance set.
func (n *Node) InheritsFrom(name string) bool { return n.Inheritance.Has(name) }

// Property returns the property with the given name.
func (n *Node) Property(name string) (*Property, bool) {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return &n.Properties[i], true
		}
	}
	return nil, false
}

// AddEnumRef records a referenced enum name once. It reports whether the name
// was new.
func (n *Node) AddEnumRef(name string) bool {
	for _, r := range n.EnumRefs {
		if r == name {
			return false
		}
	}
	n.EnumRefs = append(n.EnumRefs, name)
	return true
}

// AddInheritance records ancestor names, allocating the set on first use.
func (n *Node) AddInheritance(names ...string) {
	if n.Inheritance == nil {
		n.Inheritance = NewNameSet()
	}
	n.Inheritance.Add(names...)
}

// Package resolver defines the normalized schema facts the graph builder
// consumes and provides [Document], an in-memory implementation decoded from
// a facts file.
//
// Parsing raw OpenAPI or JSON Schema, following external $ref includes, and
// merging allOf at the JSON level are the job of an upstream resolver. This
// package only describes the shape of its output.
package resolver

// PropertyFact describes one declared property of a type.
type PropertyFact struct {
	Name        string   `yaml:"name" json:"name"`
	Type        string   `yaml:"type" json:"type"`
	Cardinality string   `yaml:"cardinality" json:"cardinality,omitempty"`
	Required    bool     `yaml:"required" json:"required,omitempty"`
	Description string   `yaml:"description" json:"description,omitempty"`
	EnumValues  []string `yaml:"enum" json:"enum,omitempty"`
	Nullable    bool     `yaml:"nullable" json:"nullable,omitempty"`
	Default     string   `yaml:"default" json:"default,omitempty"`
	Deprecated  bool     `yaml:"deprecated" json:"deprecated,omitempty"`
	Array       bool     `yaml:"array" json:"array,omitempty"`
}

// Branch is one allOf entry: either a reference to a named type or an inline
// object contributing properties.
type Branch struct {
	Ref        string         `yaml:"ref" json:"ref,omitempty"`
	Properties []PropertyFact `yaml:"properties" json:"properties,omitempty"`
}

// IsRef reports whether the branch references a named type.
func (b Branch) IsRef() bool { return b.Ref != "" }

// Resolver exposes resolved per-type facts.
//
// Implementations must be deterministic: the same underlying source yields the
// same answers in the same order.
type Resolver interface {
	// TypeNames lists every declared type in a stable order.
	TypeNames() []string
	// HasType reports whether name is declared or a builtin scalar.
	HasType(name string) bool
	IsEnumType(name string) bool
	IsSimpleType(name string) bool
	Description(name string) string
	Deprecated(name string) bool
	// EnumValues returns the literals of an enum type.
	EnumValues(name string) (values []string, nullable bool)
	// OwnProperties returns declared properties with cardinality resolved.
	OwnProperties(name string) []PropertyFact
	AllOfBranches(name string) []Branch
	// OneOf returns the names of exclusive alternatives.
	OneOf(name string) []string
	// DiscriminatorMapping maps tag values to target type names.
	DiscriminatorMapping(name string) map[string]string
	DiscriminatorProperty(name string) string
	// InlineDefinition returns the literal rendering of an anonymous type.
	InlineDefinition(name string) (string, bool)
	// IsConfiguredFlattenType reports whether allOf references to name are
	// flattened instead of producing inheritance edges.
	IsConfiguredFlattenType(name string) bool
}

// ResolvedCardinality returns the explicit cardinality, or the one implied by the
// required and array flags.
func (p PropertyFact) ResolvedCardinality() string {
	if p.Cardinality != "" {
		return p.Cardinality
	}
	switch {
	case p.Array && p.Required:
		return "1..*"
	case p.Array:
		return "0..*"
	case p.Required:
		return "1"
	default:
		return "0..1"
	}
}

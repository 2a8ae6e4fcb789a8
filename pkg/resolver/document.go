package resolver

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/apigraph/pkg/config"
	"github.com/matzehuels/apigraph/pkg/errors"
)

// builtinScalars are always simple and always resolvable.
var builtinScalars = map[string]bool{
	"string": true, "integer": true, "number": true, "boolean": true,
	"object": true, "any": true, "date": true, "date-time": true,
	"uuid": true, "binary": true, "byte": true, "int32": true,
	"int64": true, "float": true, "double": true,
}

// IsBuiltinScalar reports whether name is one of the builtin scalar types.
func IsBuiltinScalar(name string) bool { return builtinScalars[name] }

// TypeFact is the declaration of one type in a facts document.
type TypeFact struct {
	Description   string         `yaml:"description"`
	Properties    []PropertyFact `yaml:"properties"`
	AllOf         []Branch       `yaml:"allOf"`
	OneOf         []string       `yaml:"oneOf"`
	Discriminator *Discriminator `yaml:"discriminator"`
	Enum          []string       `yaml:"enum"`
	Nullable      bool           `yaml:"nullable"`
	Deprecated    bool           `yaml:"deprecated"`

	// Scalar declares the type an alias of a scalar, e.g. "string".
	Scalar string `yaml:"scalar"`
	// Ref declares the type an alias of another type.
	Ref string `yaml:"ref"`
	// Items declares the type an array of another type.
	Items string `yaml:"items"`
	// Anonymous marks a schema that had no name of its own in the source.
	Anonymous bool `yaml:"anonymous"`
}

// Discriminator is a polymorphic dispatch declaration.
type Discriminator struct {
	Property string            `yaml:"property"`
	Mapping  map[string]string `yaml:"mapping"`
}

// Document is a [Resolver] over an in-memory set of type facts.
type Document struct {
	types   map[string]*TypeFact
	names   []string
	flatten *config.Matcher
}

var _ Resolver = (*Document)(nil)

type documentFile struct {
	Types map[string]*TypeFact `yaml:"types"`
}

// NewDocument returns a document over types. AllOf references matching
// flatten are reported by IsConfiguredFlattenType; flatten may be nil.
func NewDocument(types map[string]*TypeFact, flatten *config.Matcher) *Document {
	d := &Document{types: make(map[string]*TypeFact, len(types)), flatten: flatten}
	for name, fact := range types {
		if fact == nil {
			fact = &TypeFact{}
		}
		d.types[name] = fact
	}
	d.names = slices.Sorted(maps.Keys(d.types))
	return d
}

// Decode reads a YAML or JSON facts document from r.
func Decode(r io.Reader, flatten *config.Matcher) (*Document, error) {
	var file documentFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidSchema, "facts document is empty")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidSchema, err, "decode facts")
	}
	if len(file.Types) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSchema, "facts document declares no types")
	}
	for name := range file.Types {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New(errors.ErrCodeInvalidSchema, "facts document declares a type with an empty name")
		}
	}
	return NewDocument(file.Types, flatten), nil
}

// Load reads the facts file at path.
func Load(path string, flatten *config.Matcher) (*Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "facts %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSchema, err, "open facts %s", path)
	}
	defer f.Close()
	return Decode(f, flatten)
}

// TypeNames returns the declared names in ascending order.
func (d *Document) TypeNames() []string { return slices.Clone(d.names) }

// HasType reports whether name is declared or a builtin scalar.
func (d *Document) HasType(name string) bool {
	_, ok := d.types[name]
	return ok || builtinScalars[name]
}

// IsEnumType reports whether name declares enum literals.
func (d *Document) IsEnumType(name string) bool {
	t, ok := d.types[name]
	return ok && len(t.Enum) > 0
}

// IsSimpleType reports whether name is a builtin scalar or a named alias
// resolving to one.
func (d *Document) IsSimpleType(name string) bool {
	if builtinScalars[name] {
		return true
	}
	t, ok := d.types[name]
	if !ok || t.Anonymous || len(t.Enum) > 0 || len(t.Properties) > 0 {
		return false
	}
	return d.scalarOf(name, make(map[string]bool)) != ""
}

// Description returns the declared description.
func (d *Document) Description(name string) string {
	if t, ok := d.types[name]; ok {
		return t.Description
	}
	return ""
}

// Deprecated reports whether the type is declared deprecated.
func (d *Document) Deprecated(name string) bool {
	t, ok := d.types[name]
	return ok && t.Deprecated
}

// EnumValues returns the enum literals and nullability.
func (d *Document) EnumValues(name string) ([]string, bool) {
	t, ok := d.types[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(t.Enum), t.Nullable
}

// OwnProperties returns the declared properties with cardinality resolved.
func (d *Document) OwnProperties(name string) []PropertyFact {
	t, ok := d.types[name]
	if !ok {
		return nil
	}
	return resolveProperties(t.Properties)
}

func resolveProperties(props []PropertyFact) []PropertyFact {
	out := make([]PropertyFact, len(props))
	for i, p := range props {
		p.Cardinality = p.ResolvedCardinality()
		out[i] = p
	}
	return out
}

// AllOfBranches returns the allOf entries with inline properties resolved.
func (d *Document) AllOfBranches(name string) []Branch {
	t, ok := d.types[name]
	if !ok {
		return nil
	}
	out := make([]Branch, len(t.AllOf))
	for i, b := range t.AllOf {
		out[i] = Branch{Ref: b.Ref, Properties: resolveProperties(b.Properties)}
	}
	return out
}

// OneOf returns the exclusive alternatives.
func (d *Document) OneOf(name string) []string {
	if t, ok := d.types[name]; ok {
		return slices.Clone(t.OneOf)
	}
	return nil
}

// DiscriminatorMapping returns a copy of the dispatch mapping.
func (d *Document) DiscriminatorMapping(name string) map[string]string {
	t, ok := d.types[name]
	if !ok || t.Discriminator == nil {
		return nil
	}
	return maps.Clone(t.Discriminator.Mapping)
}

// DiscriminatorProperty returns the tag property name.
func (d *Document) DiscriminatorProperty(name string) string {
	t, ok := d.types[name]
	if !ok || t.Discriminator == nil {
		return ""
	}
	return t.Discriminator.Property
}

// InlineDefinition renders an anonymous type as a literal. Objects render as
// "{a: string, b: integer}", aliases as the scalar they resolve to.
func (d *Document) InlineDefinition(name string) (string, bool) {
	t, ok := d.types[name]
	if !ok || !t.Anonymous || len(t.Enum) > 0 {
		return "", false
	}
	if props := t.Properties; len(props) > 0 {
		fields := make([]string, len(props))
		for i, p := range props {
			typ := p.Type
			if typ == "" {
				typ = "any"
			}
			if p.Array {
				typ = "[]" + typ
			}
			fields[i] = fmt.Sprintf("%s: %s", p.Name, typ)
		}
		return "{" + strings.Join(fields, ", ") + "}", true
	}
	if s := d.scalarOf(name, make(map[string]bool)); s != "" {
		return s, true
	}
	return "object", true
}

// IsConfiguredFlattenType reports whether name matches the flatten matcher.
func (d *Document) IsConfiguredFlattenType(name string) bool {
	return d.flatten.Match(name)
}

// scalarOf follows scalar, $ref, items and single-reference allOf chains and
// returns the scalar a type resolves to, or "" for anything structured.
func (d *Document) scalarOf(name string, seen map[string]bool) string {
	if builtinScalars[name] {
		return name
	}
	if seen[name] {
		return ""
	}
	seen[name] = true
	t, ok := d.types[name]
	if !ok || len(t.Enum) > 0 || len(t.Properties) > 0 {
		return ""
	}
	switch {
	case t.Scalar != "":
		return t.Scalar
	case t.Ref != "":
		return d.scalarOf(t.Ref, seen)
	case t.Items != "":
		if s := d.scalarOf(t.Items, seen); s != "" {
			return "[]" + s
		}
	case len(t.AllOf) == 1 && t.AllOf[0].IsRef():
		return d.scalarOf(t.AllOf[0].Ref, seen)
	}
	return ""
}

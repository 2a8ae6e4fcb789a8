package builder

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/apigraph/pkg/config"
	"github.com/matzehuels/apigraph/pkg/model"
	"github.com/matzehuels/apigraph/pkg/resolver"
)

// Options controls edge classification and property merging.
type Options struct {
	// Containment reclassifies structural edges to matching targets.
	Containment *config.Matcher
	// MergeProperties copies flattened ancestors' properties.
	MergeProperties bool
	// HideInherited marks merged properties hidden.
	HideInherited bool
	// DefaultDiscriminatorValue defaults dispatch targets' type tags.
	DefaultDiscriminatorValue bool
}

// OptionsFromConfig derives builder options from a configuration.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	containment, err := config.Compile(cfg.Inheritance.Containment)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Containment:               containment,
		MergeProperties:           cfg.Inheritance.MergeProperties,
		HideInherited:             cfg.Inheritance.HideInherited,
		DefaultDiscriminatorValue: cfg.Inheritance.DefaultDiscriminatorValue,
	}, nil
}

// Stats summarizes a build.
type Stats struct {
	Nodes     int
	Edges     int
	Flattened int // allOf branches merged instead of linked
	Dropped   int // properties and edges dropped as unresolvable
	Unknown   int // properties typed with model.UnknownType
	Inline    int // anonymous nodes whose edges were suppressed
	Marked    int // edges marked redundant
}

// Builder turns resolver facts into a graph. A Builder is single-use and not
// safe for concurrent use.
type Builder struct {
	r      resolver.Resolver
	opts   Options
	logger *log.Logger

	g      *model.Graph
	warned map[string]bool
	stats  Stats
}

// New creates a builder. A nil logger uses log.Default().
func New(r resolver.Resolver, opts Options, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		r:      r,
		opts:   opts,
		logger: logger,
		g:      model.New(),
		warned: make(map[string]bool),
	}
}

// Build is a convenience wrapper for New(r, opts, logger).Build().
func Build(r resolver.Resolver, opts Options, logger *log.Logger) *model.Graph {
	return New(r, opts, logger).Build()
}

// Stats returns the statistics of the last build.
func (b *Builder) Stats() Stats { return b.stats }

// Build runs every construction phase and returns the complete graph. The
// returned graph must be treated as read-only.
func (b *Builder) Build() *model.Graph {
	for _, name := range b.r.TypeNames() {
		b.wire(b.node(name))
	}
	b.suppressInline()
	b.resolveInheritance()
	b.resolveDiscriminators()
	b.markRedundant()
	if b.opts.DefaultDiscriminatorValue {
		b.defaultTypeTags()
	}

	b.stats.Nodes = b.g.NodeCount()
	b.stats.Edges = b.g.EdgeCount()
	b.logger.Debug("built type graph",
		"nodes", b.stats.Nodes,
		"edges", b.stats.Edges,
		"flattened", b.stats.Flattened,
		"dropped", b.stats.Dropped,
		"inline", b.stats.Inline,
		"marked", b.stats.Marked)
	return b.g
}

// node returns the node for name, creating it on first reference.
func (b *Builder) node(name string) *model.Node {
	if n, ok := b.g.Node(name); ok {
		return n
	}
	var n *model.Node
	if b.r.IsEnumType(name) {
		values, nullable := b.r.EnumValues(name)
		n = model.NewEnumNode(name, values, nullable)
	} else {
		n = model.NewNode(name)
	}
	n.Description = b.r.Description(name)
	n.Deprecated = b.r.Deprecated(name)
	n.Simple = b.r.IsSimpleType(name)
	n.DiscriminatorProperty = b.r.DiscriminatorProperty(name)
	if inline, ok := b.r.InlineDefinition(name); ok {
		n.Inline = inline
	}
	_ = b.g.AddNode(n)
	return n
}

func (b *Builder) wire(n *model.Node) {
	for _, p := range b.r.OwnProperties(n.Name) {
		b.addProperty(n, p, model.VisibilityOwn)
	}
	for _, branch := range b.r.AllOfBranches(n.Name) {
		if !branch.IsRef() {
			for _, p := range branch.Properties {
				b.addProperty(n, p, model.VisibilityOwn)
			}
			continue
		}
		b.wireAllOf(n, branch.Ref)
	}
	for _, alt := range b.r.OneOf(n.Name) {
		b.structuralEdge(n, alt, model.EdgeOneOf)
	}
	b.wireDiscriminator(n)
}

func (b *Builder) wireAllOf(n *model.Node, ref string) {
	if !b.r.HasType(ref) {
		b.drop(n.Name, "allOf", ref)
		return
	}
	if b.flattens(ref) {
		b.node(ref)
		n.AddInheritance(ref)
		b.stats.Flattened++
		if b.opts.MergeProperties {
			b.mergeInherited(n, ref, model.NewNameSet(n.Name))
		}
		return
	}
	b.structuralEdge(n, ref, model.EdgeAllOf)
}

// flattens reports whether allOf references to name are merged. Enum targets
// are never flattened.
func (b *Builder) flattens(name string) bool {
	return b.r.IsConfiguredFlattenType(name) && !b.r.IsEnumType(name)
}

// mergeInherited copies the properties of ancestor, and of the ancestor's own
// flattened ancestors, into n.
func (b *Builder) mergeInherited(n *model.Node, ancestor string, seen model.NameSet) {
	if seen.Has(ancestor) {
		return
	}
	seen.Add(ancestor)

	vis := model.VisibilityInherited
	if b.opts.HideInherited {
		vis = model.VisibilityInheritedHidden
	}
	for _, p := range b.r.OwnProperties(ancestor) {
		b.addProperty(n, p, vis)
	}
	for _, branch := range b.r.AllOfBranches(ancestor) {
		if !branch.IsRef() {
			for _, p := range branch.Properties {
				b.addProperty(n, p, vis)
			}
			continue
		}
		if b.r.HasType(branch.Ref) && b.flattens(branch.Ref) {
			b.node(branch.Ref)
			n.AddInheritance(branch.Ref)
			b.mergeInherited(n, branch.Ref, seen)
		}
	}
}

func (b *Builder) wireDiscriminator(n *model.Node) {
	mapping := b.r.DiscriminatorMapping(n.Name)
	if len(mapping) == 0 {
		return
	}
	n.LocalDiscriminators = model.NewNameSet()
	for _, key := range slices.Sorted(maps.Keys(mapping)) {
		target := mapping[key]
		if !b.r.HasType(target) {
			b.drop(n.Name, "discriminator "+key, target)
			continue
		}
		if b.r.IsSimpleType(target) {
			b.stats.Dropped++
			b.logger.Warn("dropping scalar discriminator target", "type", n.Name, "value", key, "target", target)
			continue
		}
		n.LocalDiscriminators.Add(target)
		b.node(target)
		if len(mapping) > 1 && target != n.Name {
			b.structuralEdge(n, target, model.EdgeDiscriminator)
		}
	}
}

func (b *Builder) structuralEdge(n *model.Node, target string, kind model.EdgeKind) {
	if !b.r.HasType(target) {
		b.drop(n.Name, kind.String(), target)
		return
	}
	b.node(target)
	_, _, _ = b.g.EnsureEdge(&model.Edge{
		From:        n.Name,
		To:          target,
		Kind:        kind,
		Containment: b.flattens(target) || b.opts.Containment.Match(target),
	})
}

// addProperty records p on n and wires the edge its type implies. Inherited
// properties never replace a property n already has.
func (b *Builder) addProperty(n *model.Node, p resolver.PropertyFact, vis model.Visibility) {
	if _, exists := n.Property(p.Name); exists {
		if vis == model.VisibilityOwn {
			b.logger.Debug("ignoring duplicate property", "type", n.Name, "property", p.Name)
		}
		return
	}

	prop := model.Property{
		Name:            p.Name,
		Type:            p.Type,
		Cardinality:     p.Cardinality,
		Required:        p.Required,
		Description:     p.Description,
		Visibility:      vis,
		Deprecated:      p.Deprecated,
		IsEnum:          len(p.EnumValues) > 0,
		EnumValues:      p.EnumValues,
		Nullable:        p.Nullable,
		Default:         p.Default,
		VendorExtension: strings.HasPrefix(p.Name, "x-"),
	}

	switch {
	case p.Type == "" && prop.IsEnum:
		prop.Type = "string"
	case p.Type == "":
		b.warnOnce("untyped property "+p.Name, "property without type information", "type", n.Name, "property", p.Name)
		prop.Type = model.UnknownType
		b.stats.Unknown++
	case b.r.IsEnumType(p.Type):
		prop.IsEnum = true
		prop.EnumValues, _ = b.r.EnumValues(p.Type)
		b.node(p.Type)
		n.AddEnumRef(p.Type)
		b.propertyEdge(n, prop, model.EdgeEnum)
	case b.r.IsSimpleType(p.Type):
	case b.r.HasType(p.Type):
		b.node(p.Type)
		b.propertyEdge(n, prop, model.EdgeRelationship)
	default:
		b.drop(n.Name, "property "+p.Name, p.Type)
		return
	}
	n.Properties = append(n.Properties, prop)
}

func (b *Builder) propertyEdge(n *model.Node, p model.Property, kind model.EdgeKind) {
	_, _, _ = b.g.EnsureEdge(&model.Edge{
		From:        n.Name,
		To:          p.Type,
		Kind:        kind,
		Label:       p.Name,
		Cardinality: p.Cardinality,
		Required:    p.Required,
		Deprecated:  p.Deprecated,
		Description: p.Description,
	})
}

func (b *Builder) drop(owner, via, target string) {
	b.stats.Dropped++
	b.logger.Warn("dropping unresolvable reference", "type", owner, "via", via, "target", target)
}

// warnOnce logs msg the first time shape is seen.
func (b *Builder) warnOnce(shape, msg string, keyvals ...any) {
	if b.warned[shape] {
		return
	}
	b.warned[shape] = true
	b.logger.Warn(msg, keyvals...)
}

func (b *Builder) suppressInline() {
	for _, n := range b.g.Nodes() {
		if n.IsInline() {
			b.g.RemoveOutEdges(n.Name)
			b.stats.Inline++
		}
	}
}

func (b *Builder) markRedundant() {
	for _, e := range b.g.Edges() {
		if e.Kind != model.EdgeDiscriminator {
			continue
		}
		for _, other := range b.g.EdgesBetween(e.From, e.To) {
			if other.Kind == model.EdgeDiscriminator {
				continue
			}
			if !other.Marked {
				other.Marked = true
				b.stats.Marked++
			}
			if !e.Marked {
				e.Marked = true
				b.stats.Marked++
			}
		}
	}
}

func (b *Builder) defaultTypeTags() {
	for _, e := range b.g.Edges() {
		if e.Kind != model.EdgeDiscriminator {
			continue
		}
		if t, ok := b.g.Node(e.To); ok && t.TypeTag == "" {
			t.TypeTag = t.Name
		}
	}
}

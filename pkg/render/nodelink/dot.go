package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/apigraph/pkg/model"
	"github.com/matzehuels/apigraph/pkg/render"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds property and enum-literal compartments to the boxes.
	// When false, only the type name is shown.
	Detailed bool
	// Root is highlighted when set, typically the subgraph's root.
	Root string
	// Title is drawn above the diagram when set.
	Title string
}

// ToDOT converts g to Graphviz DOT. The result can be rendered with
// [RenderSVG], [RenderPDF] or [RenderPNG].
func ToDOT(g *model.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=record, style=filled, fillcolor=white, fontname=\"Helvetica\", fontsize=12];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(nodeAttrs(n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *model.Node, opts Options) []string {
	attrs := []string{`label="` + fmtLabel(n, opts.Detailed) + `"`}
	switch {
	case n.Name == opts.Root:
		attrs = append(attrs, "fillcolor=lightblue")
	case n.IsEnum():
		attrs = append(attrs, "fillcolor=lightyellow")
	case n.Kind == model.NodeKindDiscriminator:
		attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightgrey")
	}
	if n.Deprecated {
		attrs = append(attrs, "fontcolor=grey50")
	}
	return attrs
}

// fmtLabel builds a record label: the title, then one compartment of left
// aligned lines. The result is already escaped for a quoted DOT string.
func fmtLabel(n *model.Node, detailed bool) string {
	title := escape(n.Name)
	switch {
	case n.IsEnum():
		title = "«enum»\\n" + title
	case n.Kind == model.NodeKindDiscriminator:
		title = "«discriminator»\\n" + title
	}
	if !detailed {
		return title
	}

	var lines []string
	switch {
	case n.IsEnum():
		for _, v := range n.Values {
			lines = append(lines, escape(v))
		}
		if n.Nullable {
			lines = append(lines, "null")
		}
	case n.IsInline():
		lines = append(lines, "= "+escape(n.Inline))
	default:
		if n.DiscriminatorProperty != "" {
			lines = append(lines, "#"+escape(n.DiscriminatorProperty))
		}
		for _, p := range n.Properties {
			if p.Visible() {
				lines = append(lines, fmtProperty(p))
			}
		}
	}
	if len(lines) == 0 {
		return "{" + title + "}"
	}
	return "{" + title + "|" + strings.Join(lines, "\\l") + "\\l}"
}

func fmtProperty(p model.Property) string {
	var sb strings.Builder
	if p.Visibility == model.VisibilityInherited {
		sb.WriteString("^")
	}
	sb.WriteString(escape(p.Name))
	sb.WriteString(": ")
	sb.WriteString(escape(p.Type))
	if p.Cardinality != "" {
		fmt.Fprintf(&sb, " [%s]", escape(p.Cardinality))
	}
	return sb.String()
}

var recordEscaper = strings.NewReplacer(
	`{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`, `"`, `\"`,
)

// escape quotes record-label metacharacters.
func escape(s string) string { return recordEscaper.Replace(s) }

func edgeAttrs(e *model.Edge) []string {
	var attrs []string
	switch e.Kind {
	case model.EdgeAllOf:
		attrs = append(attrs, "arrowhead=empty")
	case model.EdgeOneOf:
		attrs = append(attrs, "arrowhead=odiamond")
	case model.EdgeDiscriminator:
		attrs = append(attrs, "arrowhead=vee", "style=dashed")
	case model.EdgeEnum:
		attrs = append(attrs, "arrowhead=vee", "style=dotted")
	default:
		attrs = append(attrs, "arrowhead=vee")
	}
	if e.Containment {
		attrs[0] = "arrowhead=diamond"
	}
	if e.Label != "" {
		label := e.Label
		if e.Cardinality != "" {
			label += " " + e.Cardinality
		}
		attrs = append(attrs, fmt.Sprintf("label=%q", label))
	}
	if e.Marked {
		attrs = append(attrs, "color=grey60", "fontcolor=grey60")
	}
	if e.Deprecated {
		attrs = append(attrs, "penwidth=0.5")
	}
	return attrs
}

// RenderSVG renders DOT to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox moves the viewBox origin to zero and sets matching pixel
// dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders DOT as PDF via SVG.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT as PNG via SVG at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

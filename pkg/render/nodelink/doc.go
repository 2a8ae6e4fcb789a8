// Package nodelink renders type graphs as Graphviz class diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true, Root: "Order"})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Diagram
//
// Every type becomes a record box. With [Options.Detailed], the box lists
// the visible properties as "name: type [cardinality]"; hidden inherited
// properties are omitted and inherited ones are prefixed with "^". Enums list
// their literals; inline definitions show the literal type instead of
// properties.
//
// Edges are styled by kind:
//
//   - relationship: open arrow labelled with the property name
//   - allOf: hollow triangle
//   - oneOf: hollow diamond
//   - discriminator: dashed open arrow
//   - enum: dotted open arrow
//
// Containment edges use a filled diamond and marked (redundant) edges are
// drawn in grey.
//
// # Dependencies
//
// [RenderSVG] uses [github.com/goccy/go-graphviz] in-process. PDF and PNG go
// through package render and need rsvg-convert.
package nodelink

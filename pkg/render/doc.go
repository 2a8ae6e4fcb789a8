// Package render turns type graphs into diagrams.
//
// The [nodelink] subpackage produces Graphviz class diagrams: one box per
// type with its properties, arrows styled by edge kind. This package holds
// the format conversion shared by renderers.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG using the external rsvg-convert tool from
// librsvg:
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/apigraph/pkg/render/nodelink
package render

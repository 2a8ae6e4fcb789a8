package pipeline

import (
	"bytes"
	"context"

	"github.com/matzehuels/apigraph/pkg/io"
	"github.com/matzehuels/apigraph/pkg/model"
	"github.com/matzehuels/apigraph/pkg/render/nodelink"
)

// RenderOptions selects one artifact.
type RenderOptions struct {
	// Root is highlighted in diagrams and used as the title. Empty for the
	// complete graph.
	Root     string
	Format   string
	Detailed bool
	// Scale applies to PNG output. Zero means DefaultPNGScale.
	Scale float64
}

// Render produces a single artifact for g.
func Render(ctx context.Context, g *model.Graph, opts RenderOptions) ([]byte, error) {
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}
	if opts.Format == FormatJSON {
		var buf bytes.Buffer
		if err := io.WriteGraph(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	dot := nodelink.ToDOT(g, nodelink.Options{
		Detailed: opts.Detailed,
		Root:     opts.Root,
		Title:    opts.Root,
	})
	switch opts.Format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		scale := opts.Scale
		if scale <= 0 {
			scale = DefaultPNGScale
		}
		return nodelink.RenderPNG(ctx, dot, scale)
	}
}

package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/apigraph/pkg/errors"
)

const installHint = "install librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux)"

// ToPDF converts SVG to PDF with rsvg-convert.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNG converts SVG to PNG with rsvg-convert. A scale of 2.0 doubles the
// resolution.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %g", scale)
	}
	return convert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func convert(ctx context.Context, svg []byte, format string, extra ...string) ([]byte, error) {
	bin, err := exec.LookPath("rsvg-convert")
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s output needs rsvg-convert; %s", format, installHint)
	}

	cmd := exec.CommandContext(ctx, bin, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}

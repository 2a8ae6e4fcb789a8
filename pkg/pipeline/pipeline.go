// Package pipeline runs the load → build → decompose → render sequence shared
// by the CLI commands.
//
// # Stages
//
//  1. Load: read the configuration and the schema facts document
//  2. Build: construct the complete type graph
//  3. Decompose: split the graph around a resource into subgraphs
//  4. Render: produce one artifact per subgraph and format
//
// Decompositions and artifacts are cached by the hash of their inputs, so
// re-running on an unchanged facts file and configuration only re-renders
// what is missing.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    FactsPath: "api.yaml",
//	    Resource:  "Order",
//	    Formats:   []string{"svg"},
//	})
//	svg := result.Artifacts["Order"]["svg"]
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/apigraph/pkg/errors"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// DefaultPNGScale is the scale used for PNG output.
const DefaultPNGScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// Options configures one pipeline run.
type Options struct {
	// FactsPath is the schema facts document (YAML or JSON).
	FactsPath string
	// ConfigPath is an optional TOML configuration file.
	ConfigPath string
	// Resource is the pivot to decompose. Empty renders the complete graph.
	Resource string
	// Formats lists the artifacts to render for every subgraph.
	Formats []string
	// Detailed adds property compartments to diagrams.
	Detailed bool
	// Refresh bypasses cached decompositions and artifacts.
	Refresh bool
}

// Validate checks the options and applies defaults.
func (o *Options) Validate() error {
	if o.FactsPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "facts file is required")
	}
	if o.Resource != "" {
		if err := errors.ValidateTypeName(o.Resource); err != nil {
			return err
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	return ValidateFormats(o.Formats)
}

// ValidateFormat checks a single output format. Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// Stats records stage durations and sizes.
type Stats struct {
	Nodes         int
	Edges         int
	SubGraphs     int
	LoadTime      time.Duration
	BuildTime     time.Duration
	DecomposeTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo reports which stages were served from the cache.
type CacheInfo struct {
	DecomposeHit bool
	ArtifactHits int
	ArtifactMiss int
}

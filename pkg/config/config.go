// Package config holds the tunable settings of graph construction and
// decomposition.
//
// Settings are read from TOML. Every field has a default (see [Default]); a
// configuration file only needs to list what it changes:
//
//	[inheritance]
//	flatten = ["Resource", "/.*Base$/"]
//	containment = ["Reference"]
//
//	[complexity]
//	high_threshold = 5000
//
// The complexity constants are empirically tuned. Their absolute values carry
// no meaning outside the scorer.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/apigraph/pkg/errors"
)

// Default values.
const (
	DefaultLowThreshold         = 400.0
	DefaultHighThreshold        = 4000.0
	DefaultMaxDiagramComplexity = 1000.0
	DefaultMinSubgraphSize      = 3
)

// Config is the complete configuration.
type Config struct {
	Inheritance Inheritance `toml:"inheritance"`
	Complexity  Complexity  `toml:"complexity"`
	Decompose   Decompose   `toml:"decompose"`
}

// Inheritance controls how allOf, oneOf and discriminator relations become
// edges.
type Inheritance struct {
	// Flatten lists basic (exact name) and pattern (regex) inheritance
	// targets. An allOf branch referencing a match is merged into the
	// referencing type instead of producing an AllOf edge.
	Flatten []string `toml:"flatten"`
	// Containment lists targets whose structural edges are reclassified as
	// ordinary containment.
	Containment []string `toml:"containment"`
	// MergeProperties copies a flattened target's properties into the
	// referencing type.
	MergeProperties bool `toml:"merge_properties"`
	// HideInherited marks merged properties hidden instead of visible.
	HideInherited bool `toml:"hide_inherited"`
	// DefaultDiscriminatorValue sets each dispatch target's type tag to its
	// own name when the schema does not provide one.
	DefaultDiscriminatorValue bool `toml:"default_discriminator_value"`
}

// Complexity tunes the scorer.
type Complexity struct {
	// LowThreshold separates trivial from non-trivial diagrams.
	LowThreshold float64 `toml:"low_threshold"`
	// HighThreshold is the total above which a diagram must be decomposed.
	HighThreshold float64 `toml:"high_threshold"`
	// MaxDiagramComplexity is assigned to a pivot whose raw score is zero.
	MaxDiagramComplexity float64 `toml:"max_diagram_complexity"`
	// MinSubgraphSize zeroes contributions of nodes with smaller reachable
	// subgraphs.
	MinSubgraphSize int `toml:"min_subgraph_size"`
	// ReferenceWrappers lists names never treated as simple prefixes.
	ReferenceWrappers []string `toml:"reference_wrappers"`
	// Resources lists globally recognized resources exempt from the minimum
	// subgraph size.
	Resources []string `toml:"resources"`
}

// Decompose tunes subgraph extraction.
type Decompose struct {
	// IncludeInherited keeps leaf subtypes of an extracted node in its
	// subgraph.
	IncludeInherited bool `toml:"include_inherited"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Inheritance: Inheritance{
			MergeProperties: true,
		},
		Complexity: Complexity{
			LowThreshold:         DefaultLowThreshold,
			HighThreshold:        DefaultHighThreshold,
			MaxDiagramComplexity: DefaultMaxDiagramComplexity,
			MinSubgraphSize:      DefaultMinSubgraphSize,
			ReferenceWrappers:    []string{"Reference"},
		},
	}
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the TOML file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Validate checks thresholds and compiles every matcher.
func (c Config) Validate() error {
	cx := c.Complexity
	if cx.LowThreshold < 0 || cx.HighThreshold <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "thresholds must be positive (low=%g, high=%g)", cx.LowThreshold, cx.HighThreshold)
	}
	if cx.LowThreshold > cx.HighThreshold {
		return errors.New(errors.ErrCodeInvalidConfig, "low_threshold %g exceeds high_threshold %g", cx.LowThreshold, cx.HighThreshold)
	}
	if cx.MaxDiagramComplexity <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_diagram_complexity must be positive")
	}
	if cx.MinSubgraphSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "min_subgraph_size must not be negative")
	}
	for _, patterns := range [][]string{c.Inheritance.Flatten, c.Inheritance.Containment, cx.ReferenceWrappers, cx.Resources} {
		if _, err := Compile(patterns); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Matchers are the compiled name matchers of a configuration.
type Matchers struct {
	Flatten     *Matcher
	Containment *Matcher
	Wrappers    *Matcher
	Resources   *Matcher
}

// Matchers compiles every matcher. It fails on the first invalid pattern.
func (c Config) Matchers() (Matchers, error) {
	var m Matchers
	var err error
	if m.Flatten, err = Compile(c.Inheritance.Flatten); err != nil {
		return Matchers{}, err
	}
	if m.Containment, err = Compile(c.Inheritance.Containment); err != nil {
		return Matchers{}, err
	}
	if m.Wrappers, err = Compile(c.Complexity.ReferenceWrappers); err != nil {
		return Matchers{}, err
	}
	if m.Resources, err = Compile(c.Complexity.Resources); err != nil {
		return Matchers{}, err
	}
	return m, nil
}

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/apigraph/pkg/errors"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[inheritance]
flatten = ["Resource", "/.*Base$/"]
hide_inherited = true

[complexity]
high_threshold = 9000
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Complexity.HighThreshold != 9000 {
		t.Errorf("HighThreshold = %g, want 9000", cfg.Complexity.HighThreshold)
	}
	if cfg.Complexity.LowThreshold != DefaultLowThreshold {
		t.Errorf("LowThreshold = %g, want default %g", cfg.Complexity.LowThreshold, DefaultLowThreshold)
	}
	if !cfg.Inheritance.MergeProperties {
		t.Error("MergeProperties default lost")
	}
	if !cfg.Inheritance.HideInherited {
		t.Error("HideInherited not decoded")
	}
	m, err := cfg.Matchers()
	if err != nil {
		t.Fatalf("Matchers: %v", err)
	}
	if !m.Flatten.Match("Resource") || !m.Flatten.Match("PetBase") || m.Flatten.Match("Pet") {
		t.Error("flatten matcher mismatch")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed toml", "[complexity"},
		{"low above high", "[complexity]\nlow_threshold = 10\nhigh_threshold = 5"},
		{"zero high", "[complexity]\nlow_threshold = 0\nhigh_threshold = 0"},
		{"negative min size", "[complexity]\nmin_subgraph_size = -1"},
		{"bad regex", "[inheritance]\nflatten = [\"/([/\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg.Complexity.HighThreshold != DefaultHighThreshold {
		t.Fatalf("Load(\"\") = %+v, %v", cfg, err)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: err = %v, want FILE_NOT_FOUND", err)
	}

	path := filepath.Join(t.TempDir(), "apigraph.toml")
	if err := os.WriteFile(path, []byte("[decompose]\ninclude_inherited = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Decompose.IncludeInherited {
		t.Error("IncludeInherited not loaded")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Inheritance.Flatten = []string{"Base"}
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(back.Inheritance.Flatten) != 1 || back.Inheritance.Flatten[0] != "Base" {
		t.Errorf("Flatten = %v", back.Inheritance.Flatten)
	}
}

package errors

import (
	"strings"
	"testing"
)

func TestValidateTypeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Order", false},
		{"dotted anonymous", "Order.shipping", false},
		{"empty", "", true},
		{"control character", "Ord\x00er", true},
		{"too long", strings.Repeat("a", 257), true},
		{"max length", strings.Repeat("a", 256), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTypeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTypeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Order", "Order"},
		{"Order.shipping", "Order.shipping"},
		{"a/b\\c", "a_b_c"},
		{"..", "_"},
		{"with space", "with_space"},
		{"ns:Type", "ns_Type"},
	}
	for _, tt := range tests {
		if got := SafeFileName(tt.input); got != tt.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidSchema, cause, "failed to decode")

	if err.Code != ErrCodeInvalidSchema {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidSchema)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	want := "INVALID_SCHEMA: failed to decode: underlying error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeTypeNotFound, "test"), ErrCodeTypeNotFound, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidConfig, false},
		{"wrapped error", Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInvalidConfig, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeFileNotFound, "test"), ErrCodeFileNotFound},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUnknownType(t *testing.T) {
	known := []string{"Order", "OrderLine", "Customer", "customerId"}
	tests := []struct {
		name string
		role string
		typ  string
		want string
	}{
		{"typo", "resource", "Ordr", "unknown resource: Ordr (did you mean Order?)"},
		{"case", "resource", "customer", "unknown resource: customer (did you mean Customer?)"},
		{"nothing close", "pivot", "Invoice", "unknown pivot: Invoice"},
		{"no names", "resource", "Order", "unknown resource: Order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := known
			if tt.name == "no names" {
				names = nil
			}
			err := UnknownType(tt.role, tt.typ, names)
			if err.Code != ErrCodeTypeNotFound {
				t.Errorf("Code = %v", err.Code)
			}
			if err.Message != tt.want {
				t.Errorf("Message = %q, want %q", err.Message, tt.want)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"order", "order", 0},
		{"ordr", "order", 1},
		{"pet", "", 3},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := editDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

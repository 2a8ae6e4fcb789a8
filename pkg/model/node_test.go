package model

import (
	"slices"
	"testing"
)

func TestNodeVariants(t *testing.T) {
	e := NewEnumNode("Color", []string{"red", "green"}, true)
	if !e.IsEnum() || !e.Nullable || len(e.Values) != 2 {
		t.Errorf("enum node = %+v", e)
	}
	d := NewDiscriminatorNode("PetKind", "kind")
	if d.Kind != NodeKindDiscriminator || d.DiscriminatorProperty != "kind" {
		t.Errorf("discriminator node = %+v", d)
	}
	if NewNode("Pet").IsEnum() {
		t.Error("plain node reported as enum")
	}
}

func TestAddEnumRef(t *testing.T) {
	n := NewNode("Pet")
	if !n.AddEnumRef("Color") {
		t.Error("first AddEnumRef should report new")
	}
	if n.AddEnumRef("Color") {
		t.Error("second AddEnumRef should report duplicate")
	}
	n.AddEnumRef("Size")
	if !slices.Equal(n.EnumRefs, []string{"Color", "Size"}) {
		t.Errorf("EnumRefs = %v", n.EnumRefs)
	}
}

func TestInheritance(t *testing.T) {
	n := NewNode("Dog")
	if n.InheritsFrom("Animal") {
		t.Error("nil inheritance set should report false")
	}
	n.AddInheritance("Animal", "Base")
	if !n.InheritsFrom("Animal") || !n.InheritsFrom("Base") {
		t.Errorf("Inheritance = %v", n.Inheritance.Sorted())
	}
}

func TestEdgeIsInheritance(t *testing.T) {
	tests := []struct {
		edge Edge
		want bool
	}{
		{Edge{Kind: EdgeAllOf}, true},
		{Edge{Kind: EdgeOneOf}, true},
		{Edge{Kind: EdgeDiscriminator}, true},
		{Edge{Kind: EdgeRelationship}, false},
		{Edge{Kind: EdgeEnum}, false},
		{Edge{Kind: EdgeAllOf, Containment: true}, false},
	}
	for _, tt := range tests {
		if got := tt.edge.IsInheritance(); got != tt.want {
			t.Errorf("%s containment=%v: IsInheritance = %v, want %v",
				tt.edge.Kind, tt.edge.Containment, got, tt.want)
		}
	}
}

func TestPropertyVisible(t *testing.T) {
	if !(Property{Visibility: VisibilityInherited}).Visible() {
		t.Error("inherited property should be visible")
	}
	if (Property{Visibility: VisibilityInheritedHidden}).Visible() {
		t.Error("hidden property should not be visible")
	}
}

func TestNameSet(t *testing.T) {
	s := NewNameSet("b", "a")
	s.AddAll(NewNameSet("c"))
	if got := s.Sorted(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Sorted = %v", got)
	}
	c := s.Clone()
	c.Remove("a")
	if !s.Has("a") {
		t.Error("Clone is not independent")
	}
	if s.Equal(c) || !s.Equal(NewNameSet("a", "b", "c")) {
		t.Error("Equal mismatch")
	}
	var empty NameSet
	if empty.Has("x") || empty.Len() != 0 || empty.Clone() == nil {
		t.Error("nil NameSet should behave as empty")
	}
}

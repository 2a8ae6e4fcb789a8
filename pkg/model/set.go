package model

import (
	"maps"
	"slices"
)

// NameSet is a set of type names. The zero value (nil) is a valid empty set
// for reads; use [NewNameSet] before adding.
type NameSet map[string]struct{}

// NewNameSet returns a set containing names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts names into the set.
func (s NameSet) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// AddAll inserts every member of other.
func (s NameSet) AddAll(other NameSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Has reports whether name is a member.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Remove deletes name from the set.
func (s NameSet) Remove(name string) { delete(s, name) }

// Len returns the number of members.
func (s NameSet) Len() int { return len(s) }

// Sorted returns the members in ascending order.
func (s NameSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns an independent copy. Cloning a nil set yields an empty set.
func (s NameSet) Clone() NameSet {
	c := make(NameSet, len(s))
	maps.Copy(c, s)
	return c
}

// Equal reports whether both sets contain the same names.
func (s NameSet) Equal(other NameSet) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if !other.Has(n) {
			return false
		}
	}
	return true
}

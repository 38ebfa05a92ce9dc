// Package chrest defines the capability boundary between the presentation
// protocol and the cognitive model that listens to it, together with a small
// default chunking-network model.
package chrest

import "strings"

// A Pattern is an ordered list of verbal primitives (syllables). Patterns
// are treated as immutable.
type Pattern []string

// MakePattern builds a pattern from the given primitives.
func MakePattern(primitives ...string) Pattern {
	p := make(Pattern, len(primitives))
	copy(p, primitives)
	return p
}

// Equals reports whether two patterns hold the same primitives in the same
// order.
func (p Pattern) Equals(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// IsPrefixOf reports whether p is a leading sub-sequence of other.
func (p Pattern) IsPrefixOf(other Pattern) bool {
	if len(p) > len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Extend returns a new pattern with one more primitive appended.
func (p Pattern) Extend(primitive string) Pattern {
	extended := make(Pattern, len(p), len(p)+1)
	copy(extended, p)
	return append(extended, primitive)
}

// String renders the pattern as "<tu pi ro>".
func (p Pattern) String() string {
	return "<" + strings.Join(p, " ") + ">"
}

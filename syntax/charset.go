package syntax

import (
	"slices"
	"strings"
)

// CharSet is an immutable set of runes taken from a bracket group body.
//
// Members are kept sorted and de-duplicated so membership is a binary search
// and two sets built from the same characters compare equal regardless of the
// order they were written in.
type CharSet struct {
	runes []rune
}

// NewCharSet builds a set from the given runes.
func NewCharSet(rs []rune) CharSet {
	if len(rs) == 0 {
		return CharSet{}
	}
	sorted := slices.Clone(rs)
	slices.Sort(sorted)
	return CharSet{runes: slices.Compact(sorted)}
}

// Contains reports whether r is a member of the set.
func (s CharSet) Contains(r rune) bool {
	_, found := slices.BinarySearch(s.runes, r)
	return found
}

// Len returns the number of distinct members.
func (s CharSet) Len() int {
	return len(s.runes)
}

// Runes returns a copy of the members in ascending order.
func (s CharSet) Runes() []rune {
	return slices.Clone(s.runes)
}

// Equal reports whether both sets hold the same members.
func (s CharSet) Equal(other CharSet) bool {
	return slices.Equal(s.runes, other.runes)
}

// String returns the members as a string in ascending order.
func (s CharSet) String() string {
	var b strings.Builder
	for _, r := range s.runes {
		b.WriteRune(r)
	}
	return b.String()
}

package prefilter

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// AhoCorasickPrefilter locates the first occurrence of any member of a
// character group that contains non-ASCII runes.
//
// Each member is added to the automaton as its UTF-8 encoding, so a single
// pass finds the earliest member regardless of encoded length.
type AhoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	size      int
}

// newAhoCorasickPrefilter returns nil if the automaton cannot be built; the
// engine then scans without a prefilter.
func newAhoCorasickPrefilter(members []rune) Prefilter {
	builder := ahocorasick.NewBuilder()
	size := 0
	for _, r := range members {
		encoded := utf8.AppendRune(nil, r)
		builder.AddPattern(encoded)
		size += len(encoded)
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &AhoCorasickPrefilter{automaton: automaton, size: size}
}

// Find implements Prefilter.Find.
func (p *AhoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// HeapBytes implements Prefilter.HeapBytes.
// Reports the encoded pattern bytes; the automaton's own tables are opaque.
func (p *AhoCorasickPrefilter) HeapBytes() int {
	return p.size
}

// Package prefilter finds candidate positions where a pattern's first token
// can possibly match, so the engine can skip input that would only restart
// the scan.
//
// A prefilter is only consulted while no match attempt is in progress. Every
// position it skips is one where the lead token is guaranteed to fail, so
// skipping produces exactly the same result as scanning rune by rune. The
// reverse does not hold: a candidate is not a match and must be verified by
// the engine.
//
// Candidates are always reported on UTF-8 rune boundaries.
//
// Example usage:
//
//	tokens := syntax.MustCompile("[xyz]+")
//	pf := prefilter.New(tokens[0])
//	pos := pf.Find([]byte("abc z"), 0)
//	// pos == 4
package prefilter

import (
	"unicode/utf8"

	"github.com/coregx/minigrep/simd"
	"github.com/coregx/minigrep/syntax"
)

// Prefilter is used to quickly find candidate match positions before running
// the engine's scan.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or -1
	// if no candidate exists. start must lie on a rune boundary.
	Find(haystack []byte, start int) int

	// HeapBytes returns the number of bytes of heap memory used by this
	// prefilter.
	HeapBytes() int
}

// New builds the cheapest prefilter able to locate lead.
//
// Selection:
//  1. Digit → DigitPrefilter
//  2. ASCII Literal / OneOrMore → single byte memchr
//  3. non-ASCII Literal / OneOrMore → memmem over the rune's UTF-8 encoding
//  4. PositiveGroup of 1-3 ASCII members → memchr, memchr2, memchr3
//  5. PositiveGroup of more ASCII members → byte table
//  6. PositiveGroup with a non-ASCII member → Aho-Corasick
//  7. NegativeGroup → negated byte table
//  8. Alphanumeric → byte table of ASCII letters, digits and UTF-8 lead bytes
//
// New returns nil for anchors and for tokens no prefilter can cover without
// missing a position, e.g. groups containing utf8.RuneError, which invalid
// input bytes decode to.
func New(lead syntax.Token) Prefilter {
	switch lead.Kind {
	case syntax.Digit:
		return NewDigitPrefilter()

	case syntax.Literal, syntax.OneOrMore:
		return newRunePrefilter(lead.Char)

	case syntax.PositiveGroup:
		return newGroupPrefilter(lead.Set)

	case syntax.NegativeGroup:
		return newNegatedTablePrefilter(lead.Set)

	case syntax.Alphanumeric:
		return newAlphanumericPrefilter()

	default:
		return nil
	}
}

func newRunePrefilter(r rune) Prefilter {
	if r == utf8.RuneError {
		return nil
	}
	if r < utf8.RuneSelf {
		return newMemchrPrefilter(byte(r))
	}
	return newMemmemPrefilter(utf8.AppendRune(nil, r))
}

func newGroupPrefilter(set syntax.CharSet) Prefilter {
	members := set.Runes()
	// Invalid input bytes decode to utf8.RuneError, which no byte search
	// can locate.
	if len(members) == 0 || set.Contains(utf8.RuneError) {
		return nil
	}

	ascii := make([]byte, 0, len(members))
	for _, r := range members {
		if r >= utf8.RuneSelf {
			return newAhoCorasickPrefilter(members)
		}
		ascii = append(ascii, byte(r))
	}

	if len(ascii) <= 3 {
		return newMemchrPrefilter(ascii...)
	}
	return newTablePrefilter(ascii)
}

// memchrPrefilter wraps simd.Memchr, Memchr2 and Memchr3 as a Prefilter.
type memchrPrefilter struct {
	needles []byte
}

func newMemchrPrefilter(needles ...byte) Prefilter {
	return &memchrPrefilter{needles: append([]byte(nil), needles...)}
}

// Find implements Prefilter.Find.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	var idx int
	switch rest := haystack[start:]; len(p.needles) {
	case 1:
		idx = simd.Memchr(rest, p.needles[0])
	case 2:
		idx = simd.Memchr2(rest, p.needles[0], p.needles[1])
	default:
		idx = simd.Memchr3(rest, p.needles[0], p.needles[1], p.needles[2])
	}
	if idx == -1 {
		return -1
	}
	return start + idx
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int {
	return len(p.needles)
}

// memmemPrefilter wraps simd.Memmem as a Prefilter.
//
// Used for a single non-ASCII rune: the needle is its UTF-8 encoding. UTF-8
// is self-synchronizing, so a hit always starts on a rune boundary.
type memmemPrefilter struct {
	needle []byte
}

func newMemmemPrefilter(needle []byte) Prefilter {
	return &memmemPrefilter{needle: needle}
}

// Find implements Prefilter.Find.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memmem(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}

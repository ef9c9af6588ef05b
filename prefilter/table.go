package prefilter

import (
	"github.com/coregx/minigrep/simd"
	"github.com/coregx/minigrep/syntax"
)

// TablePrefilter reports positions whose byte is marked in a 256-entry table,
// or, when negated, positions whose byte is not marked.
type TablePrefilter struct {
	table   [256]bool
	negated bool
}

func newTablePrefilter(members []byte) *TablePrefilter {
	p := &TablePrefilter{}
	for _, b := range members {
		p.table[b] = true
	}
	return p
}

// newNegatedTablePrefilter covers a NegativeGroup.
//
// Only ASCII members are entered into the table. Every byte >= 0x80 is
// therefore a candidate, which over-approximates non-ASCII members but never
// skips a rune outside the set. The first unmarked byte after a run of ASCII
// members always starts a rune.
func newNegatedTablePrefilter(set syntax.CharSet) *TablePrefilter {
	p := &TablePrefilter{negated: true}
	for _, r := range set.Runes() {
		if r < 0x80 {
			p.table[r] = true
		}
	}
	return p
}

// newAlphanumericPrefilter covers the Alphanumeric class.
//
// ASCII letters and digits are marked along with every byte that can lead a
// multi-byte UTF-8 sequence, since any of those runes may be a letter or
// number. Stray continuation bytes decode to utf8.RuneError, which is neither.
func newAlphanumericPrefilter() *TablePrefilter {
	p := &TablePrefilter{}
	for b := '0'; b <= '9'; b++ {
		p.table[b] = true
	}
	for b := 'a'; b <= 'z'; b++ {
		p.table[b] = true
		p.table[b-'a'+'A'] = true
	}
	for b := 0xC0; b <= 0xFF; b++ {
		p.table[b] = true
	}
	return p
}

// Find implements Prefilter.Find.
func (p *TablePrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	var idx int
	if p.negated {
		idx = simd.MemchrNotInTable(haystack[start:], &p.table)
	} else {
		idx = simd.MemchrInTable(haystack[start:], &p.table)
	}
	if idx == -1 {
		return -1
	}
	return start + idx
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *TablePrefilter) HeapBytes() int {
	return len(p.table)
}

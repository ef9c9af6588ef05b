package prefilter

import "github.com/coregx/minigrep/simd"

// DigitPrefilter implements the Prefilter interface for patterns that must
// start with an ASCII digit [0-9].
//
// Finding a digit is only a candidate position; the engine still has to run
// the rest of the pattern from there.
type DigitPrefilter struct{}

// NewDigitPrefilter creates a prefilter for patterns led by `\d`.
func NewDigitPrefilter() *DigitPrefilter {
	return &DigitPrefilter{}
}

// Find returns the index of the first digit at or after start.
// Returns -1 if no digit is found in the remaining haystack.
func (p *DigitPrefilter) Find(haystack []byte, start int) int {
	return simd.MemchrDigitAt(haystack, start)
}

// HeapBytes returns 0 because DigitPrefilter is stateless.
func (p *DigitPrefilter) HeapBytes() int {
	return 0
}

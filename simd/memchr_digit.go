package simd

import "encoding/binary"

// digitBytes sets the high bit of every byte of x in the range ['0'-'9'].
//
// Each byte is reduced to its low seven bits before the range test so no
// borrow or carry crosses a byte boundary; the ^x term drops bytes >= 0x80.
// Unlike zeroBytes the result is exact for every byte.
func digitBytes(x uint64) uint64 {
	const below, above = '0' - 1, '9' + 1
	low7 := x & (lo8 * 127)
	return (lo8*(127+above) - low7) & ^x & (low7 + lo8*(127-below)) & hi8
}

// MemchrDigit returns the index of the first ASCII digit [0-9] in haystack,
// or -1 if no digit is found.
//
// Only bytes 0x30-0x39 are reported; Unicode digits are not.
//
// Example:
//
//	pos := simd.MemchrDigit([]byte("Server at 192.168.1.1")) // 10
func MemchrDigit(haystack []byte) int {
	n := len(haystack)

	idx := 0
	for ; idx+8 <= n; idx += 8 {
		if found := digitBytes(binary.LittleEndian.Uint64(haystack[idx:])); found != 0 {
			return idx + firstSet(found)
		}
	}

	for ; idx < n; idx++ {
		if b := haystack[idx]; b >= '0' && b <= '9' {
			return idx
		}
	}
	return -1
}

// MemchrDigitAt returns the index of the first ASCII digit at or after
// position at in haystack, or -1 if no digit is found or at is out of bounds.
// The returned index is absolute, not relative to at.
func MemchrDigitAt(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}

	pos := MemchrDigit(haystack[at:])
	if pos < 0 {
		return -1
	}
	return pos + at
}

package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Candidates are located with Memchr on the needle's last byte and then
// verified in full. For UTF-8 needles the last byte is a continuation byte,
// which is far rarer in typical text than the lead byte.
//
// Example:
//
//	pos := simd.Memmem([]byte("naïve café"), []byte("é")) // 10
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if needleLen == 0 {
		return 0
	}
	if needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareIdx := needleLen - 1
	rareByte := needle[rareIdx]

	searchStart := rareIdx
	for searchStart < haystackLen {
		candidate := Memchr(haystack[searchStart:], rareByte)
		if candidate < 0 {
			return -1
		}
		candidate += searchStart

		start := candidate - rareIdx
		if bytes.Equal(haystack[start:candidate+1], needle) {
			return start
		}
		searchStart = candidate + 1
	}
	return -1
}

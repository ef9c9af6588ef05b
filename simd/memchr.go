// Package simd provides word-at-a-time byte search primitives used by the
// prefilters to skip input that cannot start a match.
//
// All kernels are pure Go and use SWAR (SIMD Within A Register): eight
// haystack bytes are loaded into a uint64 and tested in parallel with
// bitwise arithmetic. Inputs shorter than one word are scanned byte by byte.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// broadcast replicates b into every byte of a uint64.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroBytes sets the high bit of every byte of v that is zero.
//
// Formula from Hacker's Delight: (v - 0x01..01) & ^v & 0x80..80. Bits above
// the first zero byte may be spurious, so only the lowest set bit is reliable.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// firstSet converts the lowest marked byte of mask into a byte offset.
func firstSet(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := broadcast(needle)

	idx := 0
	for ; idx+8 <= n; idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		if found := zeroBytes(chunk ^ mask); found != 0 {
			return idx + firstSet(found)
		}
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)

	idx := 0
	for ; idx+8 <= n; idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		found := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2)
		if found != 0 {
			return idx + firstSet(found)
		}
	}

	for ; idx < n; idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 {
			return idx
		}
	}
	return -1
}

// Memchr3 returns the index of the first instance of needle1, needle2 or
// needle3 in haystack, or -1 if none are present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	mask3 := broadcast(needle3)

	idx := 0
	for ; idx+8 <= n; idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		found := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2) | zeroBytes(chunk^mask3)
		if found != 0 {
			return idx + firstSet(found)
		}
	}

	for ; idx < n; idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 || b == needle3 {
			return idx
		}
	}
	return -1
}

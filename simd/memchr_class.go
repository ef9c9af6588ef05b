package simd

// MemchrInTable finds the first byte where table[byte] is true.
// Returns position or -1 if not found.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// MemchrNotInTable finds the first byte where table[byte] is false.
// Returns position or -1 if every byte has table[byte] == true.
func MemchrNotInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		if len(haystack) == 0 {
			return -1
		}
		return 0
	}
	for i, b := range haystack {
		if !table[b] {
			return i
		}
	}
	return -1
}

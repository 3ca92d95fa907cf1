package metric

import "unicode/utf8"

// wordBits is the lane count of the bit-parallel fast path: one machine
// word holds one distance-lattice column per pattern character.
const wordBits = 64

// LevenshteinSimilarity converts Levenshtein edit distance to a
// similarity score via 1 - d/max(len(a), len(b)). Both strings empty is
// 1.0. Tuned for single-byte (ASCII) content: such pairs take the
// bit-parallel path when the shorter string fits in one word. Non-ASCII
// input silently degrades to a rune-based scalar computation, so scores
// stay correct either way.
func LevenshteinSimilarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	if singleByte(a) && singleByte(b) {
		d := byteDistance(a, b)
		return 1 - float64(d)/float64(max(len(a), len(b)))
	}

	// Degraded path: count runes so multi-byte characters cost one edit,
	// not len(encoding) edits.
	ra := []rune(a)
	rb := []rune(b)
	d := runeDistance(ra, rb)
	return 1 - float64(d)/float64(max(len(ra), len(rb)))
}

// byteDistance returns the edit distance between two single-byte
// strings, choosing the bit-parallel path when possible.
func byteDistance(a, b string) int {
	// Pattern is the shorter string; its length decides the path.
	if len(a) > len(b) {
		a, b = b, a
	}
	switch {
	case len(a) == 0:
		return len(b)
	case len(a) <= wordBits:
		return bitParallelDistance(a, b)
	default:
		return scalarDistance(a, b)
	}
}

// bitParallelDistance is Myers' bit-vector algorithm: the DP column for
// the pattern is packed into one word as +1/-1 delta bits, and each text
// character advances the whole column with a handful of word-wide
// operations, i.e. up to 64 cell updates per step. Requires
// 1 <= len(pattern) <= wordBits.
func bitParallelDistance(pattern, text string) int {
	var peq [256]uint64
	for i := 0; i < len(pattern); i++ {
		peq[pattern[i]] |= 1 << uint(i)
	}

	pv := ^uint64(0)
	mv := uint64(0)
	score := len(pattern)
	last := uint64(1) << uint(len(pattern)-1)

	for i := 0; i < len(text); i++ {
		eq := peq[text[i]]

		xv := eq | mv
		xh := (((eq & pv) + pv) ^ pv) | eq

		ph := mv | ^(xh | pv)
		mh := pv & xh

		if ph&last != 0 {
			score++
		}
		if mh&last != 0 {
			score--
		}

		ph = ph<<1 | 1
		pv = mh<<1 | ^(xv | ph)
		mv = ph & xv
	}

	return score
}

// scalarDistance is the classic two-row DP over bytes. Used when the
// pattern exceeds one word. Produces identical results to the
// bit-parallel path, only slower.
func scalarDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// runeDistance is the two-row DP over runes, for non-ASCII input.
func runeDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// singleByte reports whether s contains only single-byte characters.
func singleByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

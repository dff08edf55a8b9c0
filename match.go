// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

import (
	"encoding/binary"
	"math/bits"
)

// countEqual returns the number of leading equal bytes between a and b,
// capped at limit. Comparison proceeds in 8-byte chunks with an XOR +
// trailing-zeros fast path on the first mismatching chunk, falling back
// to a scalar tail loop for the remainder.
func countEqual(a, b []byte, limit int) int {
	n := limit
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	const chunk = 8
	i := 0
	for i+chunk <= n {
		av := binary.LittleEndian.Uint64(a[i : i+chunk])
		bv := binary.LittleEndian.Uint64(b[i : i+chunk])
		if av == bv {
			i += chunk
			continue
		}
		return i + bits.TrailingZeros64(av^bv)/8
	}
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// findMatch is the encoders' greedy match finder. Given the full input,
// the current position i, a maximum look-back window w and a maximum
// match length l, it returns the position and length of the best prior
// match.
//
// Candidates are scanned in descending order of j (nearest first) over
// [max(0, i-w), i); ties go to the first j encountered, i.e. the nearest
// (largest) position, which minimizes the encoded offset. If no candidate
// attains a length of at least 1, the result is (0, 0).
//
// trailingLiteral shortens the usable match length by one: codecs that
// always emit a literal byte immediately after a back-reference (C77)
// cannot let a match reach the final input byte, since there would be no
// byte left for that trailing literal.
func findMatch(input []byte, i, w, l int, trailingLiteral bool) (pos, length int) {
	lo := i - w
	if lo < 0 {
		lo = 0
	}
	cap2 := len(input) - i
	if trailingLiteral {
		cap2--
	}
	maxLen := l
	if cap2 < maxLen {
		maxLen = cap2
	}
	if maxLen < 0 {
		maxLen = 0
	}
	if maxLen == 0 {
		return 0, 0
	}
	bestPos, bestLen := 0, 0
	for j := i - 1; j >= lo; j-- {
		k := countEqual(input[i:], input[j:], maxLen)
		if k > bestLen {
			bestLen = k
			bestPos = j
		}
	}
	return bestPos, bestLen
}

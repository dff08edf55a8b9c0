// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

const (
	mode1Window     = 0x1FFF // 13-bit offset
	mode1LiteralMax = 0x1FFF // 5 bits + 8-bit extension
	mode1ConstMax   = 4 + 0xFFF
	mode1FamilyCMax = 0x1F // family C back-ref count field
	mode1FamilyDMin = 4
	mode1FamilyDMax = 7
)

// encodeMode1 greedily encodes data as a BZip/Mode1 chunk. There is no
// reference encoder to match byte-for-byte; the only requirement is that
// decodeMode1(encodeMode1(x)) == x.
//
// At each position it prefers, in order: a constant run of length >= 4
// (cheaper per byte than any back-reference for long flat runs), then a
// match of length >= 4 found via findMatch, and otherwise a literal byte.
// A match longer than the family-D length cap of 7 is split into one
// family-D token (establishing the offset as last-offset) followed by as
// many family-C tokens as needed to exhaust the remaining length, since
// the wire format has no opcode for a single long match.
func encodeMode1(data []byte) []byte {
	var out []byte
	var lit []byte
	lastOffset := 0

	flushLiteral := func() {
		for len(lit) > 0 {
			n := len(lit)
			if n > mode1LiteralMax {
				n = mode1LiteralMax
			}
			if n <= 0x1F {
				out = append(out, byte(n))
			} else {
				out = append(out, 0x20|byte(n>>8), byte(n))
			}
			out = append(out, lit[:n]...)
			lit = lit[n:]
		}
	}

	i := 0
	for i < len(data) {
		// constant run
		runLen := 1
		for i+runLen < len(data) && data[i+runLen] == data[i] && runLen < mode1ConstMax {
			runLen++
		}
		if runLen >= 4 {
			flushLiteral()
			n := runLen - 4
			if n <= 0x0F {
				out = append(out, 0x40|byte(n))
			} else {
				out = append(out, 0x50|byte(n>>8), byte(n))
			}
			out = append(out, data[i])
			i += runLen
			continue
		}

		pos, length := findMatch(data, i, mode1Window, 1<<30, false)
		if length >= 4 {
			flushLiteral()
			offset := i - pos
			remaining := length
			if offset != lastOffset {
				first := remaining
				if first > mode1FamilyDMax {
					first = mode1FamilyDMax
				}
				n := first - mode1FamilyDMin
				out = append(out, 0x80|byte(n)<<5|byte(offset>>8), byte(offset))
				lastOffset = offset
				remaining -= first
			}
			for remaining > 0 {
				n := remaining
				if n > mode1FamilyCMax {
					n = mode1FamilyCMax
				}
				out = append(out, 0x60|byte(n))
				remaining -= n
			}
			i += length
			continue
		}

		lit = append(lit, data[i])
		i++
	}
	flushLiteral()
	return out
}

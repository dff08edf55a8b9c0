// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

const (
	c77Window   = 256
	c77LengthLA = 255
)

// encodeC77Mode8 encodes data as a C77 chunk using mode 8, the only mode
// with a defined encoder (the reference implementation this was derived
// from never wrote an encoder for any other mode, and decoding is all
// that's required of them).
//
// A codeword with x1 == 0 flushes a block of up to 255 pending literal
// bytes; otherwise x1 is a match length and x2+1 its offset, followed by
// one mandatory literal byte. The pending-literal region is force-flushed
// at 252 bytes so a following match emission can never push a single
// flush past the 255-byte block limit.
func encodeC77Mode8(data []byte) []byte {
	const mode = 8
	out := []byte{mode, 0, 0, 0}

	var pending int // number of bytes at data[i-pending:i] not yet flushed

	flushLiteral := func(i int) {
		start := i - pending
		for pending > 0 {
			n := pending
			if n > c77LengthLA {
				n = c77LengthLA
			}
			out = append(out, 0, byte(n))
			out = append(out, data[start:start+n]...)
			start += n
			pending -= n
		}
	}

	i := 0
	for i < len(data) {
		if pending >= 252 {
			flushLiteral(i)
		}

		threshold := 2
		if pending > 0 {
			threshold = 4
		}
		pos, length := findMatch(data, i, c77Window, c77LengthLA, true)
		if length >= threshold {
			flushLiteral(i)
			x := uint16(length) | uint16(i-pos-1)<<mode
			out = append(out, byte(x), byte(x>>8))
			out = append(out, data[i+length])
			i += length + 1
			continue
		}

		pending++
		i++
	}
	flushLiteral(i)
	return out
}

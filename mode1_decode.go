// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

// decodeMode1 decodes a BZip/Mode1 chunk: a byte-aligned LZ77 stream of
// four opcode families selected by the token's high bits, with an
// implicit last-offset register used by the short repeat family.
//
//	0 0 x n n n n n   literal copy of n bytes (x extends n via a second byte)
//	0 1 0 x n n n n   constant run of 4+n bytes (x extends n via a second byte)
//	0 1 1 n n n n n   back-reference of n bytes at last-offset
//	1 n n o o o o o   back-reference of 4+n bytes at a fresh 13-bit offset;
//	                  updates last-offset
//
// Only the fourth family updates last-offset; the stream ends when the
// cursor is exhausted.
func decodeMode1(data []byte, w writer) error {
	cur := newCursor(data)
	lastOffset := 0
	for !cur.isEmpty() {
		tok, err := cur.u8()
		if err != nil {
			return err
		}
		switch {
		case tok&0xC0 == 0x00: // 00xnnnnn
			n := int(tok & 0x1F)
			if tok&0x20 != 0 {
				next, err := cur.u8()
				if err != nil {
					return err
				}
				n = n<<8 | int(next)
			}
			b, err := cur.slice(n)
			if err != nil {
				return err
			}
			w.literal(b)

		case tok&0xE0 == 0x40: // 010xnnnn
			n := int(tok & 0x0F)
			if tok&0x10 != 0 {
				next, err := cur.u8()
				if err != nil {
					return err
				}
				n = n<<8 | int(next)
			}
			v, err := cur.u8()
			if err != nil {
				return err
			}
			w.constantRun(4+n, v)

		case tok&0xE0 == 0x60: // 011nnnnn
			n := int(tok & 0x1F)
			if err := w.backRef(n, lastOffset); err != nil {
				return err
			}

		default: // 1nnooooo
			n := int((tok >> 5) & 0x3)
			next, err := cur.u8()
			if err != nil {
				return err
			}
			offset := int(tok&0x1F)<<8 | int(next)
			if err := w.backRef(4+n, offset); err != nil {
				return err
			}
			lastOffset = offset
		}
	}
	return nil
}

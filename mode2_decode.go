// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

// decodeMode2 decodes a BZip/Mode2 chunk: a bit-aligned LZ77 stream read
// via bitReader after priming.
//
// Per token:
//   - bit 0            -> one literal byte, read via the byte cursor
//     (literals are byte-aligned payloads interleaved with the bit stream,
//     not bit-packed)
//   - bit 1, bit 0      -> back-reference: 8-bit offset, count code
//   - bit 1, bit 1      -> 13-bit value v:
//     v == 0            -> end of stream
//     v == 1            -> constant run: one bit selects a 12-bit or
//     4-bit extension n, then one byte gives the value; run is 14+n
//     else              -> v is the offset; back-reference with count code
func decodeMode2(data []byte, w writer) error {
	cur := newCursor(data)
	br := newBitReader(cur)
	if err := br.prime(); err != nil {
		return err
	}

	for {
		b0, err := br.bit()
		if err != nil {
			return err
		}
		if !b0 {
			lit, err := cur.slice(1)
			if err != nil {
				return err
			}
			w.literal(lit)
			continue
		}

		b1, err := br.bit()
		if err != nil {
			return err
		}
		if !b1 {
			o, err := br.readBits(8)
			if err != nil {
				return err
			}
			n, err := br.readCount()
			if err != nil {
				return err
			}
			if err := w.backRef(n, o); err != nil {
				return err
			}
			continue
		}

		v, err := br.readBits(13)
		if err != nil {
			return err
		}
		switch v {
		case 0:
			return nil
		case 1:
			wide, err := br.bit()
			if err != nil {
				return err
			}
			var n int
			if wide {
				n, err = br.readBits(12)
			} else {
				n, err = br.readBits(4)
			}
			if err != nil {
				return err
			}
			val, err := cur.u8()
			if err != nil {
				return err
			}
			w.constantRun(14+n, val)
		default:
			n, err := br.readCount()
			if err != nil {
				return err
			}
			if err := w.backRef(n, v); err != nil {
				return err
			}
		}
	}
}

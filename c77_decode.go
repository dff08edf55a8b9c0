// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

// decodeC77Inner decodes the core C77 codeword stream (everything after
// the chunk's own 32-bit mode word has been consumed). mode 0 means the
// remainder of data is verbatim; modes 1..15 split each 16-bit codeword
// x into a low-mode-bits field x1 and a high field x2.
func decodeC77Inner(mode uint32, data []byte, w writer) error {
	if mode == 0 {
		w.literal(data)
		return nil
	}
	cur := newCursor(data)
	mask := uint32(1)<<mode - 1
	for !cur.isEmpty() {
		x, err := cur.u16()
		if err != nil {
			return err
		}
		x1 := uint32(x) & mask
		x2 := uint32(x) >> mode
		if x1 == 0 {
			b, err := cur.slice(int(x2))
			if err != nil {
				return err
			}
			w.literal(b)
		} else {
			if err := w.backRef(int(x1), int(x2)+1); err != nil {
				return err
			}
			b, err := cur.u8()
			if err != nil {
				return err
			}
			w.literal([]byte{b})
		}
	}
	return nil
}

// decodeC77Chunk decodes a single C77 chunk: a 32-bit mode word followed
// by the codeword stream decodeC77Inner understands. Modes above 15 are
// rejected; the mode word's own width (32 bits, not the 4 bits a 0..15
// range would suggest) is part of the wire format.
func decodeC77Chunk(data []byte, w writer) error {
	cur := newCursor(data)
	mode, err := cur.u32()
	if err != nil {
		return err
	}
	if mode > 15 {
		return &UnsupportedModeError{Mode: mode}
	}
	rest := data[cur.pos:]
	return decodeC77Inner(mode, rest, w)
}

// DecodeC77 decodes a single standalone C77 chunk.
func DecodeC77(data []byte) ([]byte, error) {
	var out []byte
	s := newSink(&out)
	if err := decodeC77Chunk(data, s); err != nil {
		return nil, err
	}
	return out, nil
}

// C77DecodedLen reports the decoded length of a C77 chunk without
// allocating the decoded bytes, by running the same decode loop against
// a length-only sizeMeter sink.
func C77DecodedLen(data []byte) (int, error) {
	m := &sizeMeter{}
	if err := decodeC77Chunk(data, m); err != nil {
		return 0, err
	}
	return m.n, nil
}

// decodeC77Entry decodes one FREADP entry: a 32-bit compressed size, a
// 32-bit decoded size, and that many compressed bytes holding a C77
// chunk. It validates the decoded length against the entry's own usize
// field and returns the number of input bytes consumed.
func decodeC77Entry(cur *cursor, s *sink) (consumed int, err error) {
	start := cur.pos
	csize, err := cur.u32()
	if err != nil {
		return 0, err
	}
	usize, err := cur.u32()
	if err != nil {
		return 0, err
	}
	body, err := cur.slice(int(csize))
	if err != nil {
		return 0, err
	}
	before := len(*s.out)
	if err := decodeC77Chunk(body, s); err != nil {
		return 0, err
	}
	if len(*s.out)-before != int(usize) {
		return 0, &FrameError{Reason: "c77 entry decoded length mismatch"}
	}
	return cur.pos - start, nil
}

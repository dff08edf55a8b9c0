// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

const freadpMagic = 0x80000001

// DecodeFREADP decodes a FREADP-framed stream:
//
//	magic 0x80000001 (u32 LE), u32 n_chunks, u32 total_csize,
//	u32 buf_size, u32 plaintext_size,
//	{u32 csize, u32 usize, csize bytes of a C77 chunk} * n_chunks
//
// total_csize scopes a sub-reader over the entry region. Each entry's
// own usize field is validated against what it actually decodes to, and
// buf_size must equal the largest entry's total on-wire size (its own
// 8-byte csize/usize header plus its csize payload bytes).
//
// If the magic does not match, this falls back to ED7 framing on the
// same bytes, since C77 chunks are otherwise indistinguishable from an
// ED7 stream at the outermost level.
func DecodeFREADP(data []byte) ([]byte, error) {
	outer := newCursor(data)
	ok, err := outer.checkU32(freadpMagic)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DecodeED7(data)
	}

	nChunks, err := outer.u32()
	if err != nil {
		return nil, err
	}
	totalCsize, err := outer.u32()
	if err != nil {
		return nil, err
	}
	bufSize, err := outer.u32()
	if err != nil {
		return nil, err
	}
	plaintextSize, err := outer.u32()
	if err != nil {
		return nil, err
	}

	cur, err := outer.sub(int(totalCsize))
	if err != nil {
		return nil, err
	}

	var out []byte
	s := newSink(&out)
	maxEntryLen := 0
	for i := uint32(0); i < nChunks; i++ {
		n, err := decodeC77Entry(cur, s)
		if err != nil {
			return nil, err
		}
		if n > maxEntryLen {
			maxEntryLen = n
		}
	}

	if maxEntryLen != int(bufSize) {
		return nil, &FrameError{Reason: "freadp buf_size mismatch"}
	}
	if len(out) != int(plaintextSize) {
		return nil, &FrameError{Reason: "freadp plaintext_size mismatch"}
	}
	if !cur.isEmpty() {
		return nil, &FrameError{Reason: "trailing bytes in freadp entry region"}
	}
	return out, nil
}

// EncodeFREADP encodes data as a FREADP-framed stream of C77/mode-8
// entries, chunking plaintext at 256 bytes per entry (the size of C77
// mode 8's match window). Each entry is compressed on its own, so no
// match reaches into an earlier entry.
func EncodeFREADP(data []byte) []byte {
	const entryChunkSize = c77Window
	chunks := chunkifyNonEmpty(data, entryChunkSize)

	var entries []byte
	maxEntryLen := 0
	for _, chunk := range chunks {
		compressed := encodeC77Mode8(chunk)
		entryStart := len(entries)
		writeU32(&entries, uint32(len(compressed)))
		writeU32(&entries, uint32(len(chunk)))
		entries = append(entries, compressed...)
		if n := len(entries) - entryStart; n > maxEntryLen {
			maxEntryLen = n
		}
	}

	var out []byte
	writeU32(&out, freadpMagic)
	writeU32(&out, uint32(len(chunks)))
	writeU32(&out, uint32(len(entries)))
	writeU32(&out, uint32(maxEntryLen))
	writeU32(&out, uint32(len(data)))
	out = append(out, entries...)
	return out
}

// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

const ed7ChunkSize = 0x7FF0

// DecodeED7 decodes an ED7-framed stream:
//
//	(u32 total_size, u32 plaintext_size, u32 nchunks,
//	 {u16 chunklen, chunklen-2 bytes, u8 continuation} * nchunks)
//
// total_size scopes a sub-reader over everything that follows it. The
// continuation byte is checked leniently for non-terminal chunks (any
// nonzero value means "more chunks follow") but strictly for the last
// chunk (must be exactly 0). Reference writers always emit one dummy
// trailing chunk of length 1 whose value duplicates the first byte of
// the last 0x7FF0-aligned plaintext segment; this and any further such
// chunks (some writers emit two) are trimmed after the main loop.
func DecodeED7(data []byte) ([]byte, error) {
	outer := newCursor(data)
	totalSize, err := outer.u32()
	if err != nil {
		return nil, err
	}
	cur, err := outer.sub(int(totalSize))
	if err != nil {
		return nil, err
	}

	plaintextSize, err := cur.u32()
	if err != nil {
		return nil, err
	}
	nchunks, err := cur.u32()
	if err != nil {
		return nil, err
	}

	var out []byte
	s := newSink(&out)
	chunkLens := make([]int, 0, nchunks)
	for n := uint32(0); n < nchunks; n++ {
		before := len(out)
		if err := decodeChunkRecord(cur, s); err != nil {
			return nil, err
		}
		chunkLens = append(chunkLens, len(out)-before)

		cont, err := cur.u8()
		if err != nil {
			return nil, err
		}
		terminal := n == nchunks-1
		if (cont != 0) != !terminal {
			return nil, &FrameError{Reason: "unexpected ed7 continuation byte"}
		}
	}

	for len(out) > int(plaintextSize) {
		last := len(chunkLens) - 1
		if last < 0 || chunkLens[last] != 1 {
			return nil, &FrameError{Reason: "unexpected trailing chunk at end of ed7 data"}
		}
		chunkLens = chunkLens[:last]
		trimmed := out[len(out)-1]
		out = out[:len(out)-1]
		if len(out) > 0 && trimmed != out[(len(out)-1)/ed7ChunkSize*ed7ChunkSize] {
			return nil, &FrameError{Reason: "trailing chunk byte does not match reference position"}
		}
	}

	if len(out) != int(plaintextSize) {
		return nil, &FrameError{Reason: "ed7 plaintext size mismatch"}
	}
	if !cur.isEmpty() {
		return nil, &FrameError{Reason: "trailing bytes in ed7 frame"}
	}
	return out, nil
}

// EncodeED7 encodes data as an ED7-framed stream, chunking plaintext at
// 0x7FF0 bytes and appending the reference encoder's dummy trailing
// chunk (one byte equal to the first byte of the last real chunk, or 0
// for empty input) with a terminal continuation byte of 0.
func EncodeED7(data []byte, mode BZipMode) ([]byte, error) {
	chunks := chunkifyNonEmpty(data, ed7ChunkSize)

	var body []byte
	writeU32(&body, uint32(len(data)))
	writeU32(&body, uint32(len(chunks)+1))
	for _, chunk := range chunks {
		compressed, err := EncodeBZipChunk(chunk, mode)
		if err != nil {
			return nil, err
		}
		writeU16(&body, uint16(len(compressed)+2))
		body = append(body, compressed...)
		body = append(body, 1)
	}

	var dummy byte
	if len(chunks) > 0 && len(chunks[len(chunks)-1]) > 0 {
		dummy = chunks[len(chunks)-1][0]
	}
	compressedDummy, err := EncodeBZipChunk([]byte{dummy}, mode)
	if err != nil {
		return nil, err
	}
	writeU16(&body, uint16(len(compressedDummy)+2))
	body = append(body, compressedDummy...)
	body = append(body, 0)

	var out []byte
	writeU32(&out, uint32(len(body)))
	out = append(out, body...)
	return out, nil
}

// chunkifyNonEmpty splits data into chunks of at most size bytes; unlike
// chunkify it yields zero chunks for empty input, matching the reference
// encoder (ED7's trailing dummy chunk always exists regardless, so the
// format round-trips even when there are no real chunks).
func chunkifyNonEmpty(data []byte, size int) [][]byte {
	var chunks [][]byte
	for i := 0; i < len(data); i += size {
		end := i + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[i:end])
	}
	return chunks
}

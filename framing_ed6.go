// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

const ed6ChunkSize = 0xFFF0

// DecodeED6 decodes an ED6-framed stream: an open-ended sequence of
// (u16 chunklen, chunklen-2 chunk-bytes, u8 continuation) records sharing
// one sink, so later chunks may back-reference earlier chunks' output.
// The sequence ends at the first zero continuation byte.
func DecodeED6(data []byte) ([]byte, error) {
	cur := newCursor(data)
	var out []byte
	s := newSink(&out)
	for {
		if err := decodeChunkRecord(cur, s); err != nil {
			return nil, err
		}
		cont, err := cur.u8()
		if err != nil {
			return nil, err
		}
		if cont == 0 {
			break
		}
	}
	return out, nil
}

// decodeChunkRecord reads one (u16 chunklen, chunklen-2 bytes) record and
// decodes the BZip chunk it contains into s. chunklen includes the
// length field itself. Shared by ED6 and ED7, which use the identical
// record shape for their per-chunk entries.
func decodeChunkRecord(cur *cursor, s *sink) error {
	chunklen, err := cur.u16()
	if err != nil {
		return err
	}
	if chunklen < 2 {
		return &FrameError{Reason: "chunk length field below minimum of 2"}
	}
	body, err := cur.slice(int(chunklen) - 2)
	if err != nil {
		return err
	}
	if len(body) > 0 && body[0] == 0 {
		return decodeMode2(body, s)
	}
	return decodeMode1(body, s)
}

// EncodeED6 encodes data as an ED6-framed stream, chunking plaintext at
// 0xFFF0 bytes per chunk. The continuation byte is written as the number
// of chunks remaining after the current one, truncated to a byte — the
// reference encoder's habit, though a decoder only tests zero vs nonzero.
func EncodeED6(data []byte, mode BZipMode) ([]byte, error) {
	var out []byte
	chunks := chunkify(data, ed6ChunkSize)
	remaining := len(chunks)
	for _, chunk := range chunks {
		compressed, err := EncodeBZipChunk(chunk, mode)
		if err != nil {
			return nil, err
		}
		writeU16(&out, uint16(len(compressed)+2))
		out = append(out, compressed...)
		remaining--
		out = append(out, byte(remaining))
	}
	return out, nil
}

func chunkify(data []byte, size int) [][]byte {
	if len(data) == 0 {
		return [][]byte{{}}
	}
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

func writeU16(out *[]byte, v uint16) {
	*out = append(*out, byte(v), byte(v>>8))
}

func writeU32(out *[]byte, v uint32) {
	*out = append(*out, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

// BZipMode selects which BZip opcode format to encode.
type BZipMode int

const (
	Mode1 BZipMode = iota
	Mode2
)

// DecodeBZipChunk decodes a single BZip chunk, dispatching on the mode
// discriminator in its first byte: 0 selects Mode2, nonzero Mode1.
func DecodeBZipChunk(data []byte) ([]byte, error) {
	var out []byte
	if err := decodeBZipChunkInto(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeBZipChunkInto(data []byte, out *[]byte) error {
	s := newSink(out)
	if len(data) > 0 && data[0] == 0 {
		return decodeMode2(data, s)
	}
	return decodeMode1(data, s)
}

// BZipDecodedLen reports the decoded length of a BZip chunk without
// allocating the decoded bytes, using the same mode dispatch as
// DecodeBZipChunk but writing into a length-only sizeMeter.
func BZipDecodedLen(data []byte) (int, error) {
	m := &sizeMeter{}
	var err error
	if len(data) > 0 && data[0] == 0 {
		err = decodeMode2(data, m)
	} else {
		err = decodeMode1(data, m)
	}
	if err != nil {
		return 0, err
	}
	return m.n, nil
}

// EncodeBZipChunk encodes data as a single BZip chunk in the given mode.
func EncodeBZipChunk(data []byte, mode BZipMode) ([]byte, error) {
	switch mode {
	case Mode1:
		return encodeMode1(data), nil
	case Mode2:
		return encodeMode2(data)
	default:
		return nil, &FrameError{Reason: "unknown bzip mode"}
	}
}

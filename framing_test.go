// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

import (
	"bytes"
	"testing"
)

func testCorpus() [][]byte {
	return [][]byte{
		{},
		[]byte("a"),
		[]byte("hello world"),
		bytes.Repeat([]byte("abcdefgh"), 3000), // spans multiple ED6/ED7 chunks
		bytes.Repeat([]byte{0x42}, 20000),
	}
}

func TestED6_RoundTrip(t *testing.T) {
	for _, mode := range []BZipMode{Mode1, Mode2} {
		for i, in := range testCorpus() {
			encoded, err := EncodeED6(in, mode)
			if err != nil {
				t.Fatalf("mode=%v case %d: encode failed: %v", mode, i, err)
			}
			out, err := DecodeED6(encoded)
			if err != nil {
				t.Fatalf("mode=%v case %d: decode failed: %v", mode, i, err)
			}
			if !bytes.Equal(out, in) {
				t.Fatalf("mode=%v case %d: round-trip mismatch: got %d bytes, want %d", mode, i, len(out), len(in))
			}
		}
	}
}

func TestED7_RoundTrip(t *testing.T) {
	for _, mode := range []BZipMode{Mode1, Mode2} {
		for i, in := range testCorpus() {
			encoded, err := EncodeED7(in, mode)
			if err != nil {
				t.Fatalf("mode=%v case %d: encode failed: %v", mode, i, err)
			}
			out, err := DecodeED7(encoded)
			if err != nil {
				t.Fatalf("mode=%v case %d: decode failed: %v", mode, i, err)
			}
			if !bytes.Equal(out, in) {
				t.Fatalf("mode=%v case %d: round-trip mismatch: got %d bytes, want %d", mode, i, len(out), len(in))
			}
		}
	}
}

func TestED7_TrailingChunkTrim(t *testing.T) {
	// A real 0x7FF0-byte chunk, then a one-byte dummy chunk equal to the
	// first byte of that chunk: the dummy must be trimmed and the result
	// must equal the declared plaintext_size with no trailing byte left.
	plain := bytes.Repeat([]byte{0x11}, ed7ChunkSize)
	encoded, err := EncodeED7(plain, Mode2)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := DecodeED7(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(out, plain) {
		t.Fatalf("got %d bytes, want %d", len(out), len(plain))
	}
}

func TestED7_UnexpectedExcessIsFrameError(t *testing.T) {
	in := []byte("hello world")
	encoded, err := EncodeED7(in, Mode2)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Corrupt the declared plaintext_size (bytes 4..8) to be too small,
	// so more than the dummy chunk's single byte is left over.
	corrupted := append([]byte(nil), encoded...)
	corrupted[4] = byte(len(in) - 2)
	if _, err := DecodeED7(corrupted); err == nil {
		t.Fatalf("expected Frame error for unexpected excess")
	}
}

func TestFREADP_RoundTrip(t *testing.T) {
	for i, in := range testCorpus() {
		encoded := EncodeFREADP(in)
		out, err := DecodeFREADP(encoded)
		if err != nil {
			t.Fatalf("case %d: decode failed: %v", i, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("case %d: round-trip mismatch: got %d bytes, want %d", i, len(out), len(in))
		}
	}
}

func TestFREADP_FallsBackToED7(t *testing.T) {
	in := []byte("no freadp magic here")
	encoded, err := EncodeED7(in, Mode2)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := DecodeFREADP(encoded)
	if err != nil {
		t.Fatalf("DecodeFREADP fallback: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("got %d bytes, want %d", len(out), len(in))
	}
}

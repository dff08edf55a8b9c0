// SPDX-License-Identifier: GPL-2.0-only

package falcomlz

import (
	"bytes"
	"testing"
)

func decodeMode1ToBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var out []byte
	if err := decodeMode1(data, newSink(&out)); err != nil {
		t.Fatalf("decodeMode1: %v", err)
	}
	return out
}

func TestMode1_LiteralOpcode(t *testing.T) {
	// token 0x04 = 00000100: family A, x=0, n=4; four literal bytes follow.
	data := []byte{0x04, 'A', 'B', 'C', 'D'}
	got := decodeMode1ToBytes(t, data)
	if !bytes.Equal(got, []byte("ABCD")) {
		t.Fatalf("got %q", got)
	}
}

func TestMode1_ConstantRunOpcode(t *testing.T) {
	// token 0x40 = 01000000: family B, x=0, n=0; count=4+0=4, value 'Z'.
	data := []byte{0x40, 'Z'}
	got := decodeMode1ToBytes(t, data)
	if !bytes.Equal(got, []byte("ZZZZ")) {
		t.Fatalf("got %q", got)
	}
}

func TestMode1_FamilyDThenFamilyC(t *testing.T) {
	// Literal "ABCD", then a family-D back-reference (offset 4, length 4)
	// repeating "ABCD", then a family-C repeat at the same last-offset.
	data := []byte{
		0x04, 'A', 'B', 'C', 'D', // literal ABCD
		0x80, 0x04, // 1 00 00000 | next=4: n=0 -> length 4, offset 4
		0x60, // 011 00000: family C, n=0 -> 0 extra bytes (no-op length)
	}
	var out []byte
	if err := decodeMode1(data, newSink(&out)); err != nil {
		t.Fatalf("decodeMode1: %v", err)
	}
	if !bytes.Equal(out, []byte("ABCDABCD")) {
		t.Fatalf("got %q", out)
	}
}

func TestMode1_FamilyCBeforeFamilyDFails(t *testing.T) {
	// A family-C token before any family-D token has last-offset 0, which
	// is always an invalid back-reference.
	data := []byte{0x61} // 011 00001: repeat 1 byte at last-offset (0)
	var out []byte
	err := decodeMode1(data, newSink(&out))
	if err == nil {
		t.Fatalf("expected BadRepeat error")
	}
}

func TestMode1_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("a"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		bytes.Repeat([]byte("abcdefgh"), 500),
		bytes.Repeat([]byte{0x00, 0x01, 0x02, 0x03}, 1000),
	}
	for i, in := range inputs {
		encoded := encodeMode1(in)
		var out []byte
		if err := decodeMode1(encoded, newSink(&out)); err != nil {
			t.Fatalf("case %d: decode failed: %v", i, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("case %d: round-trip mismatch: got %d bytes, want %d", i, len(out), len(in))
		}
	}
}

// SPDX-License-Identifier: GPL-2.0-only

/*
Package falcomlz decodes and encodes the proprietary byte-stream
compression formats used by Falcom's game engines — BZip (modes 1 and
2), C77 — together with the ED6, ED7, and FREADP chunk-framing envelopes
that wrap them.

BZip has no relation to the bzip2 algorithm of the same informal name.
Mode 1 is a byte-aligned LZ77 variant seen in Trails in the Sky's 3D
model files; mode 2 is a bit-aligned variant used by every known game
that carries this format. Both share one discriminator: a chunk's first
byte is 0 for mode 2, nonzero for mode 1.

# Decoding

	out, err := falcomlz.DecodeBZipChunk(compressed)
	out, err := falcomlz.DecodeED6(data)
	out, err := falcomlz.DecodeED7(data)
	out, err := falcomlz.DecodeFREADP(data) // falls back to ED7 if the magic is absent
	out, err := falcomlz.DecodeC77(data)

# Encoding

	chunk, err := falcomlz.EncodeBZipChunk(data, falcomlz.Mode2)
	framed, err := falcomlz.EncodeED7(data, falcomlz.Mode2)
	framed := falcomlz.EncodeFREADP(data) // always C77/mode-8

Round-trip equality (decode(encode(x)) == x) is the library's acceptance
criterion; it does not claim byte-identical output with any particular
reference encoder, since the match finder's nearest-wins tie-break is the
only encoder behavior precise enough in the original format to reproduce
exactly.
*/
package falcomlz

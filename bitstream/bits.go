/*
NAME
  bits.go

DESCRIPTION
  bits.go converts between byte buffers and MSB-first bit sequences, and pads
  a bit sequence to a multiple of a section's symbol width. This plays the
  role that codec/pcm's byte<->sample conversions play for PCM audio, but
  for the bitstreams that ride on binaric's MFSK symbols.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitstream provides MSB-first bit packing and unpacking for the
// three bitstreams (header, content, footer) that a binaric transmission is
// split into.
package bitstream

// Bits is an ordered sequence of bits, MSB-first within each source byte.
type Bits []bool

// FromBytes unpacks b into bits, MSB-first per byte. An empty or nil b
// yields an empty, non-nil Bits.
func FromBytes(b []byte) Bits {
	bits := make(Bits, 0, len(b)*8)
	for _, by := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (by>>uint(i))&1 == 1)
		}
	}
	return bits
}

// Bytes packs bits into bytes MSB-first, discarding any trailing run of
// fewer than 8 bits (per the deframer's framing rule).
func (bits Bits) Bytes() []byte {
	n := len(bits) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if bits[i*8+j] {
				b |= 1
			}
		}
		out[i] = b
	}
	return out
}

// PadToMultiple zero-pads bits at the tail so its length is a multiple of
// width. width must be >= 1. A bits slice that is already a multiple of
// width (including the empty slice) is returned unchanged.
func PadToMultiple(bits Bits, width int) Bits {
	if width <= 0 {
		return bits
	}
	r := len(bits) % width
	if r == 0 {
		return bits
	}
	padded := make(Bits, len(bits), len(bits)+(width-r))
	copy(padded, bits)
	for i := 0; i < width-r; i++ {
		padded = append(padded, false)
	}
	return padded
}

// Symbols groups bits into symbols of the given width, the last symbol
// being short if len(bits) is not a multiple of width. Callers that need a
// clean multiple should PadToMultiple first.
func Symbols(bits Bits, width int) []Bits {
	if width <= 0 {
		return nil
	}
	var symbols []Bits
	for i := 0; i < len(bits); i += width {
		end := i + width
		if end > len(bits) {
			end = len(bits)
		}
		symbols = append(symbols, bits[i:end])
	}
	return symbols
}

/*
NAME
  deframe.go

DESCRIPTION
  deframe.go implements the deframer (§4.10): it walks the sampler's
  transitions in order, gates each role's bits into its section's buffer by
  the mode bits, and converts the three buffers back to the original
  domain.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codec

import (
	"unicode/utf8"

	"github.com/ausocean/binaric/bitstream"
	"github.com/ausocean/binaric/envelope"
)

// DecodeWarning reports non-fatal content-interpretation problems found
// while deframing (§7). A zero-value DecodeWarning means a clean decode.
type DecodeWarning struct {
	HeaderJSONParse bool // header bytes did not parse as JSON.
	FooterUTF8      bool // footer bytes contained invalid UTF-8.
	NoEdges         bool // clock recovery found no transitions.
}

// Any reports whether any warning flag is set.
func (w DecodeWarning) Any() bool {
	return w.HeaderJSONParse || w.FooterUTF8 || w.NoEdges
}

// deframe implements §4.10: it gates each sample's role bits into the
// section currently marked active by the mode bits, then converts each
// resulting byte buffer back to its original-domain value.
func deframe(samples []symbolSample) (envelope.Message, DecodeWarning) {
	var hBits, cBits, fBits bitstream.Bits
	for _, s := range samples {
		if s.modeBits[0] {
			hBits = append(hBits, s.headerBits...)
		}
		if s.modeBits[1] {
			cBits = append(cBits, s.contentBits...)
		}
		if s.modeBits[2] {
			fBits = append(fBits, s.footerBits...)
		}
	}

	var warn DecodeWarning
	msg := envelope.Message{Header: envelope.Object{}}

	headerBytes := hBits.Bytes()
	if len(headerBytes) > 0 {
		v, err := envelope.Parse(headerBytes)
		if err != nil {
			warn.HeaderJSONParse = true
		} else if obj, ok := v.(envelope.Object); ok {
			msg.Header = obj
		} else {
			warn.HeaderJSONParse = true
		}
	}

	msg.Content = cBits.Bytes()

	footerBytes := fBits.Bytes()
	if utf8.Valid(footerBytes) {
		msg.Footer = string(footerBytes)
	} else {
		warn.FooterUTF8 = true
		msg.Footer = toValidUTF8(footerBytes)
	}

	return msg, warn
}

// toValidUTF8 replaces each invalid byte sequence in b with the Unicode
// replacement character, per §4.10's lossy-footer policy.
func toValidUTF8(b []byte) string {
	var out []rune
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return string(out)
}

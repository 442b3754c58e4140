/*
NAME
  frame.go

DESCRIPTION
  frame.go implements message framing (§4.2): splitting a message into the
  three section bitstreams the symbol synthesizer consumes.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package codec implements the binaric encoder and decoder pipelines: the
// message framer, the symbol sampler and deframer, and the top-level Encode
// and Decode entry points that tie together freqplan, bitstream, synth, dsp
// and wavio.
package codec

import (
	"github.com/ausocean/binaric/bitstream"
	"github.com/ausocean/binaric/envelope"
	"github.com/ausocean/binaric/freqplan"
)

// frame splits msg into three zero-padded bitstreams, one per section, per
// §4.2. The header is serialized to canonical JSON before framing.
func frame(msg envelope.Message, plan *freqplan.Plan) (h, c, f bitstream.Bits, err error) {
	headerJSON, err := msg.CanonicalHeaderJSON()
	if err != nil {
		return nil, nil, nil, err
	}

	h = bitstream.PadToMultiple(bitstream.FromBytes(headerJSON), plan.HeaderWidth())
	c = bitstream.PadToMultiple(bitstream.FromBytes(msg.Content), plan.ContentWidth())
	f = bitstream.PadToMultiple(bitstream.FromBytes([]byte(msg.Footer)), plan.FooterWidth())
	return h, c, f, nil
}

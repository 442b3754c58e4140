/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the top-level decoder pipeline: WAV read →
  spectrogram → clock recovery → symbol sampler → deframer → message.

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
	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/binaric/dsp"
	"github.com/ausocean/binaric/envelope"
	"github.com/ausocean/binaric/freqplan"
	"github.com/ausocean/binaric/wavio"
)

// DefaultDataRate is the decoder's default expected clock transition rate.
// The clock carrier (synth.Clock) flips once per symbol at the symbol's
// midpoint, so the observable transition rate equals the encoder's
// clock_speed, not a multiple of it.
const DefaultDataRate = DefaultClockSpeed

// DecodeOptions configures Decode. The zero value selects DefaultDataRate,
// dsp.DefaultWindowSize/DefaultOverlap, and the §4.8/§4.9 threshold
// defaults.
type DecodeOptions struct {
	DataRate     float64
	WindowSize   int
	Overlap      int
	EdgeHeight   float64
	MinDistance  int
	BitThreshold float64
	Logger       logging.Logger
}

func (o DecodeOptions) withDefaults() DecodeOptions {
	if o.DataRate <= 0 {
		o.DataRate = DefaultDataRate
	}
	if o.WindowSize <= 0 {
		o.WindowSize = dsp.DefaultWindowSize
	}
	if o.Overlap <= 0 {
		o.Overlap = dsp.DefaultOverlap
	}
	if o.EdgeHeight <= 0 {
		o.EdgeHeight = dsp.DefaultEdgeHeight
	}
	if o.MinDistance <= 0 {
		// Half the expected inter-transition frame count, so edges
		// spaced a full symbol apart aren't merged by peak-picking.
		hop := o.WindowSize - o.Overlap
		if hop <= 0 {
			hop = 1
		}
		framesPerSecond := float64(DefaultSampleRate) / float64(hop)
		interTransitionFrames := framesPerSecond / o.DataRate
		o.MinDistance = int(interTransitionFrames / 2)
		if o.MinDistance < 1 {
			o.MinDistance = 1
		}
	}
	if o.BitThreshold <= 0 {
		o.BitThreshold = DefaultBitThreshold
	}
	return o
}

// Decode implements the decode side of the pipeline: it reads path as a WAV
// file, recovers the clock transitions, samples each transition's bits and
// deframes them against plan. A clean decode returns a zero DecodeWarning;
// content-interpretation problems are reported in the warning rather than
// as an error, per §7.
func Decode(path string, plan *freqplan.Plan, opts DecodeOptions) (envelope.Message, DecodeWarning, error) {
	opts = opts.withDefaults()
	if opts.Logger != nil {
		opts.Logger.Info("decoding", "path", path, "dataRate", opts.DataRate)
	}

	samples, sampleRate, err := wavio.Read(path)
	if err != nil {
		return envelope.Message{}, DecodeWarning{}, errors.Wrap(err, "binaric: reading wav")
	}
	if err := plan.Validate(sampleRate, opts.WindowSize); err != nil {
		return envelope.Message{}, DecodeWarning{}, err
	}

	spec := dsp.Compute(samples, sampleRate, opts.WindowSize, opts.Overlap)

	clockBins := []int{spec.NearestBin(plan.Clock[0]), spec.NearestBin(plan.Clock[1])}
	_, times := spec.DetectEdges(clockBins, opts.EdgeHeight, opts.MinDistance)
	if len(times) == 0 {
		if opts.Logger != nil {
			opts.Logger.Warning("no clock edges detected, returning empty envelope")
		}
		return envelope.Message{Header: envelope.Object{}}, DecodeWarning{NoEdges: true}, nil
	}

	samplesOut := sampleSymbols(spec, times, plan, opts.BitThreshold)
	msg, warn := deframe(samplesOut)

	if opts.Logger != nil && warn.Any() {
		opts.Logger.Warning("decode completed with warnings",
			"headerJSONParse", warn.HeaderJSONParse, "footerUTF8", warn.FooterUTF8)
	}
	return msg, warn, nil
}

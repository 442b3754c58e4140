/*
NAME
  sampler.go

DESCRIPTION
  sampler.go implements the symbol sampler (§4.9): at each recovered clock
  transition, it reads one spectrogram column per role (header, content,
  footer, modes) and thresholds it into bits.

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
	"github.com/ausocean/binaric/dsp"
	"github.com/ausocean/binaric/freqplan"
)

// DefaultBitThreshold is the fraction of a column's maximum power a bin must
// reach to be read as a 1 bit (§4.9, empirical).
const DefaultBitThreshold = 0.2

// symbolSample is one decoded transition: the bits read for each role at
// the spectrogram frame nearest that transition's time.
type symbolSample struct {
	time        float64
	headerBits  []bool
	contentBits []bool
	footerBits  []bool
	modeBits    [3]bool
}

// roleBins holds the spectrogram bin indices for each role's tones.
type roleBins struct {
	header, content, footer, modes []int
}

// binsFor resolves every tone in plan to its nearest spectrogram bin.
func binsFor(spec *dsp.Spectrogram, plan *freqplan.Plan) roleBins {
	resolve := func(tones []float64) []int {
		bins := make([]int, len(tones))
		for i, t := range tones {
			bins[i] = spec.NearestBin(t)
		}
		return bins
	}
	return roleBins{
		header:  resolve(plan.Header),
		content: resolve(plan.Content),
		footer:  resolve(plan.Footer),
		modes:   resolve(plan.Modes[:]),
	}
}

// sampleSymbols implements §4.9: for each transition time, find the nearest
// frame and threshold each role's column at thresholdFrac of that column's
// max power.
func sampleSymbols(spec *dsp.Spectrogram, transitionTimes []float64, plan *freqplan.Plan, thresholdFrac float64) []symbolSample {
	bins := binsFor(spec, plan)
	samples := make([]symbolSample, len(transitionTimes))
	for i, tau := range transitionTimes {
		j := spec.NearestFrame(tau)
		h := thresholdColumn(spec, bins.header, j, thresholdFrac)
		c := thresholdColumn(spec, bins.content, j, thresholdFrac)
		f := thresholdColumn(spec, bins.footer, j, thresholdFrac)
		m := thresholdColumn(spec, bins.modes, j, thresholdFrac)

		samples[i] = symbolSample{
			time:        tau,
			headerBits:  h,
			contentBits: c,
			footerBits:  f,
		}
		for k := 0; k < 3 && k < len(m); k++ {
			samples[i].modeBits[k] = m[k]
		}
	}
	return samples
}

// thresholdColumn reads the power at bins for frame j and returns, per bin,
// whether its power exceeds thresholdFrac of the column's max (§4.9's
// relative-per-column threshold). A column with zero power everywhere
// yields all-false bits.
func thresholdColumn(spec *dsp.Spectrogram, bins []int, j int, thresholdFrac float64) []bool {
	col := spec.Column(bins, j)
	max := 0.0
	for _, p := range col {
		if p > max {
			max = p
		}
	}
	bits := make([]bool, len(col))
	if max == 0 {
		return bits
	}
	thr := thresholdFrac * max
	for i, p := range col {
		bits[i] = p > thr
	}
	return bits
}

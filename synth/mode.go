/*
NAME
  mode.go

DESCRIPTION
  mode.go overlays a continuous sine at a mode frequency across an entire
  sample buffer, marking which section (header, content or footer) is being
  transmitted during that buffer's duration.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package synth

// DefaultModeAmplitude is the linear amplitude (before final
// normalization) of a mode carrier.
const DefaultModeAmplitude = 0.2

// OverlayMode adds a continuous sine at modeFreq across the full duration
// of samples and returns the result as a new buffer; samples is left
// unmodified.
func OverlayMode(samples []float64, modeFreq float64, sampleRate int, amplitude float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	addTone(out, modeFreq, sampleRate, amplitude)
	return out
}

/*
NAME
  clock.go

DESCRIPTION
  clock.go is the clock synthesizer: a periodic two-tone waveform whose
  spectral dominance flips once per symbol period, at the period's midpoint,
  tiled to a requested total duration.

  The prototype this was distilled from (original_source/binaric v1/scripts/
  binaric_to_audio.py, generate_manchester_clock_wave) builds the carrier by
  Manchester-encoding a repeating "1010101010" bit pattern and tiling the
  resulting half-bit sequence. Tracing that encoding shows consecutive clock
  periods land on opposite tone halves: period N plays tones[0] then
  tones[1], period N+1 plays tones[1] then tones[0], and so on, so the two
  halves straddling a period boundary always carry the same tone and only
  the boundary-free midpoint of each period is a transition. This
  implementation reproduces that property directly, alternating which tone
  leads each period instead of tiling a fixed-order tile, so the clock
  carrier flips exactly once per symbol, at the symbol's centre.

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

import "math"

// DefaultClockAmplitude is the linear amplitude (before final
// normalization) of the clock carrier.
const DefaultClockAmplitude = 0.2

// Clock synthesizes the clock carrier: one period (1/clockSpeed seconds) is
// two equal halves, but which tone leads alternates every period so that
// tone only changes at each period's midpoint. Even periods play tones[0]
// then tones[1]; odd periods play tones[1] then tones[0], keeping the tone
// constant across the period boundary. This alternating tile is repeated to
// cover totalDuration seconds, then trimmed or zero-padded to exactly
// round(totalDuration*sampleRate) samples.
func Clock(tones [2]float64, clockSpeed float64, totalDuration float64, sampleRate int, amplitude float64) []float64 {
	total := int(math.Round(totalDuration * float64(sampleRate)))
	if total <= 0 {
		return nil
	}

	period := 1.0 / clockSpeed
	samplesPerPeriod := int(math.Round(period * float64(sampleRate)))
	if samplesPerPeriod < 2 {
		samplesPerPeriod = 2
	}
	half := samplesPerPeriod / 2

	evenTile := make([]float64, samplesPerPeriod)
	addTone(evenTile[:half], tones[0], sampleRate, amplitude)
	addTone(evenTile[half:], tones[1], sampleRate, amplitude)

	oddTile := make([]float64, samplesPerPeriod)
	addTone(oddTile[:half], tones[1], sampleRate, amplitude)
	addTone(oddTile[half:], tones[0], sampleRate, amplitude)

	out := make([]float64, total)
	for i := range out {
		periodIdx := i / samplesPerPeriod
		within := i % samplesPerPeriod
		if periodIdx%2 == 0 {
			out[i] = evenTile[within]
		} else {
			out[i] = oddTile[within]
		}
	}
	return out
}

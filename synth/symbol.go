/*
NAME
  symbol.go

DESCRIPTION
  symbol.go is the MFSK symbol synthesizer: for each group of len(tones)
  bits, it sums sine waves for the tones whose bit is set, one symbol period
  at a time.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package synth generates the sample buffers that make up a binaric
// transmission: MFSK data symbols, the clock carrier, and mode overlays.
package synth

import "math"

// DefaultSymbolAmplitude is the linear amplitude (before final
// normalization) used for MFSK data symbols.
const DefaultSymbolAmplitude = 0.5

// Symbols synthesizes one symbol per group of len(tones) bits (bit i pairs
// with tones[i]), each symbol lasting symbolDuration seconds. Symbols are
// concatenated with no gap. An empty bits yields an empty buffer. bits need
// not be a multiple of len(tones); a short trailing group is padded with
// zero bits for synthesis purposes only.
func Symbols(bits []bool, tones []float64, symbolDuration float64, sampleRate int, amplitude float64) []float64 {
	if len(bits) == 0 || len(tones) == 0 {
		return nil
	}
	samplesPerSymbol := int(math.Round(symbolDuration * float64(sampleRate)))
	numSymbols := (len(bits) + len(tones) - 1) / len(tones)

	out := make([]float64, 0, numSymbols*samplesPerSymbol)
	for sym := 0; sym < numSymbols; sym++ {
		start := sym * len(tones)
		symbolWave := make([]float64, samplesPerSymbol)
		for i, tone := range tones {
			idx := start + i
			if idx >= len(bits) || !bits[idx] {
				continue
			}
			addTone(symbolWave, tone, sampleRate, amplitude)
		}
		out = append(out, symbolWave...)
	}
	return out
}

// addTone adds amplitude*sin(2*pi*freq*t) for t = 0, 1/sampleRate, ...
// into dst, in place.
func addTone(dst []float64, freq float64, sampleRate int, amplitude float64) {
	w := 2 * math.Pi * freq / float64(sampleRate)
	for i := range dst {
		dst[i] += amplitude * math.Sin(w*float64(i))
	}
}

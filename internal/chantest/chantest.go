/*
NAME
  chantest.go

DESCRIPTION
  chantest.go simulates channel impairments for round-trip test fixtures:
  additive white Gaussian noise at a target SNR and silence corruption of a
  leading fraction of samples, plus amplitude attenuation. AWGN scales its
  noise from gonum's stat.Variance and draws it with stat/distuv; Attenuate
  repurposes codec/pcm/filters.go's Amplifier (amplitude scaling of a PCM
  buffer). This is test-only channel
  simulation, distinct from the production decode path, which does no
  acoustic equalization.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package chantest simulates channel impairments (noise, dropouts) for
// binaric's round-trip test fixtures.
package chantest

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ausocean/binaric/codec/pcm"
)

// AWGN adds additive white Gaussian noise to samples so that the resulting
// signal-to-noise ratio is approximately snrDB decibels, measured against
// samples' own power. rng supplies the noise draws; pass rand.New(rand.
// NewSource(seed)) for a reproducible fixture.
func AWGN(samples []float64, snrDB float64, rng *rand.Rand) []float64 {
	if len(samples) == 0 {
		return nil
	}
	signalPower := stat.Variance(samples, nil)
	noisePower := signalPower / math.Pow(10, snrDB/10)
	noiseStdDev := math.Sqrt(noisePower)

	dist := distuv.Normal{Mu: 0, Sigma: noiseStdDev, Src: rng}

	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s + dist.Rand()
	}
	return clip(out)
}

// Silence zeroes the leading fraction (0..1) of samples, simulating a
// corrupted lead-in that the clock and mode carriers must recover from.
func Silence(samples []float64, fraction float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	n := int(float64(len(out)) * fraction)
	for i := 0; i < n && i < len(out); i++ {
		out[i] = 0
	}
	return out
}

// Attenuate scales samples by factor using codec/pcm's Amplifier, clipping
// at full scale. It round-trips through a 16-bit PCM Buffer, the same
// representation the Amplifier was built to filter.
func Attenuate(samples []float64, factor float64) ([]float64, error) {
	buf := pcm.BufferFromInts(toInt16(samples), 44100, 1)
	amp := pcm.NewAmplifier(factor)
	out, err := amp.Apply(buf)
	if err != nil {
		return nil, err
	}
	ints := pcm.IntsFromBuffer(pcm.Buffer{Format: buf.Format, Data: out})
	result := make([]float64, len(ints))
	for i, v := range ints {
		result[i] = float64(v) / 32768.0
	}
	return result, nil
}

func toInt16(samples []float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		v := int(math.Round(s * 32767))
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		out[i] = v
	}
	return out
}

func clip(samples []float64) []float64 {
	for i, s := range samples {
		if s > 1 {
			samples[i] = 1
		} else if s < -1 {
			samples[i] = -1
		}
	}
	return samples
}

/*
NAME
  spectrogram.go

DESCRIPTION
  spectrogram.go computes a short-time power spectrogram of a mono sample
  buffer using a Hann-windowed STFT, applying the same go-dsp FFT and
  window-function building blocks as a sliding analysis rather than a
  one-shot filter.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dsp provides the spectrogram front-end and clock-edge recovery
// used to decode a binaric waveform.
package dsp

import (
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// DefaultWindowSize and DefaultOverlap are the STFT parameters from §4.7:
// a 2048-sample Hann window resolves tones ~21.5 Hz apart at 44.1kHz, and a
// 548-sample hop (2048-1500 overlap) gives several frames per symbol at
// data rates up to 10Hz.
const (
	DefaultWindowSize = 2048
	DefaultOverlap    = 1500
)

// Spectrogram is the triple (F, T, S) of §3: ascending frequency bins,
// ascending frame times in seconds, and non-negative power S[i][j] at bin i,
// frame j.
type Spectrogram struct {
	F []float64
	T []float64
	S [][]float64

	sampleRate int
	hop        int
}

// Compute returns the power spectrogram of samples at sampleRate, using a
// Hann window of winSize samples with the given sample overlap between
// consecutive frames. winSize <= 0 selects DefaultWindowSize and overlap < 0
// selects DefaultOverlap.
func Compute(samples []float64, sampleRate int, winSize, overlap int) *Spectrogram {
	if winSize <= 0 {
		winSize = DefaultWindowSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	hop := winSize - overlap
	if hop <= 0 {
		hop = 1
	}

	win := window.Hann(winSize)

	var numFrames int
	if len(samples) >= winSize {
		numFrames = 1 + (len(samples)-winSize)/hop
	}

	spec := &Spectrogram{
		sampleRate: sampleRate,
		hop:        hop,
		F:          make([]float64, winSize/2+1),
		T:          make([]float64, numFrames),
		S:          make([][]float64, winSize/2+1),
	}
	for i := range spec.F {
		spec.F[i] = float64(i) * float64(sampleRate) / float64(winSize)
	}
	for i := range spec.S {
		spec.S[i] = make([]float64, numFrames)
	}

	frame := make([]float64, winSize)
	for j := 0; j < numFrames; j++ {
		start := j * hop
		for i := 0; i < winSize; i++ {
			frame[i] = samples[start+i] * win[i]
		}
		spec.T[j] = float64(start+winSize/2) / float64(sampleRate)

		spectrum := fft.FFTReal(frame)
		for i := range spec.F {
			c := spectrum[i]
			power := real(c)*real(c) + imag(c)*imag(c)
			spec.S[i][j] = power
		}
	}
	return spec
}

// NumFrames returns the number of spectrogram frames.
func (s *Spectrogram) NumFrames() int { return len(s.T) }

// NearestBin returns the index into F closest to target Hz.
func (s *Spectrogram) NearestBin(target float64) int {
	return nearestIndex(s.F, target)
}

// NearestFrame returns the index into T closest to time (seconds).
func (s *Spectrogram) NearestFrame(time float64) int {
	return nearestIndex(s.T, time)
}

// Column returns the power at each of the given bins for frame j.
func (s *Spectrogram) Column(bins []int, j int) []float64 {
	col := make([]float64, len(bins))
	for i, b := range bins {
		col[i] = s.S[b][j]
	}
	return col
}

func nearestIndex(values []float64, target float64) int {
	if len(values) == 0 {
		return -1
	}
	best := 0
	bestDist := absf(values[0] - target)
	for i := 1; i < len(values); i++ {
		d := absf(values[i] - target)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

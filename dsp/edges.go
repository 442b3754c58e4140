/*
NAME
  edges.go

DESCRIPTION
  edges.go recovers the clock transition times from a spectrogram: mean
  power over the two clock bins, min-max normalization, a gradient, and
  peak-picking of the absolute gradient. This is the Manchester-style clock
  recovery of §4.8.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dsp

import "gonum.org/v1/gonum/floats"

// DefaultEdgeHeight is the minimum absolute gradient value a frame must
// reach to be considered a clock transition (§9: empirical, exposed here).
const DefaultEdgeHeight = 0.25

// MeanPower averages spectrogram power across the given bins, frame by
// frame, producing one value per frame.
func (s *Spectrogram) MeanPower(bins []int) []float64 {
	p := make([]float64, s.NumFrames())
	if len(bins) == 0 {
		return p
	}
	for j := range p {
		var sum float64
		for _, b := range bins {
			sum += s.S[b][j]
		}
		p[j] = sum / float64(len(bins))
	}
	return p
}

// Normalize min-max scales p to [0, 1]. A constant p (max == min) is mapped
// to all zeros rather than dividing by zero.
func Normalize(p []float64) []float64 {
	out := make([]float64, len(p))
	if len(p) == 0 {
		return out
	}
	lo := floats.Min(p)
	hi := floats.Max(p)
	span := hi - lo
	if span == 0 {
		return out
	}
	for i, v := range p {
		out[i] = (v - lo) / span
	}
	return out
}

// Gradient returns the central difference of p, falling back to a forward
// or backward difference at the boundaries.
func Gradient(p []float64) []float64 {
	g := make([]float64, len(p))
	if len(p) == 0 {
		return g
	}
	if len(p) == 1 {
		return g
	}
	g[0] = p[1] - p[0]
	g[len(p)-1] = p[len(p)-1] - p[len(p)-2]
	for i := 1; i < len(p)-1; i++ {
		g[i] = (p[i+1] - p[i-1]) / 2
	}
	return g
}

// FindPeaks returns the indices of local maxima of abs(values) that reach
// at least height, keeping only one peak within any run of minDistance
// consecutive frames (the strongest in that run). minDistance <= 1 disables
// de-duplication, matching the unmodified prototype's behaviour.
func FindPeaks(values []float64, height float64, minDistance int) []int {
	var candidates []int
	for i := range values {
		v := absf(values[i])
		if v < height {
			continue
		}
		if i > 0 && absf(values[i-1]) > v {
			continue
		}
		if i < len(values)-1 && absf(values[i+1]) > v {
			continue
		}
		candidates = append(candidates, i)
	}
	if minDistance <= 1 {
		return candidates
	}

	var peaks []int
	for _, c := range candidates {
		if len(peaks) > 0 && c-peaks[len(peaks)-1] < minDistance {
			if absf(values[c]) > absf(values[peaks[len(peaks)-1]]) {
				peaks[len(peaks)-1] = c
			}
			continue
		}
		peaks = append(peaks, c)
	}
	return peaks
}

// DetectEdges isolates power in clockBins, normalizes it, differentiates it
// and peak-picks the absolute gradient to find clock transition frames. It
// returns the frame indices and their times. If fewer than two edges are
// found, both returned slices are empty (§4.8's edge-case policy) — the
// decoder then yields an empty message rather than an error.
func (s *Spectrogram) DetectEdges(clockBins []int, height float64, minDistance int) (frames []int, times []float64) {
	p := s.MeanPower(clockBins)
	p = Normalize(p)
	g := Gradient(p)
	peaks := FindPeaks(g, height, minDistance)
	if len(peaks) < 2 {
		return nil, nil
	}
	ts := make([]float64, len(peaks))
	for i, fr := range peaks {
		ts[i] = s.T[fr]
	}
	return peaks, ts
}

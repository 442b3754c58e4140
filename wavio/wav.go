/*
NAME
  wav.go

DESCRIPTION
  wav.go reads and writes the canonical RIFF/WAVE 16-bit PCM mono files that
  carry a binaric transmission, peak-normalizing on write per §6/§8's
  normalization invariant. It uses go-audio/wav and go-audio/audio the same
  way exp/flac/decode.go does for FLAC, and falls back to codec/pcm's
  StereoToMono if it is ever handed a stereo file.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wavio reads and writes the mono 16-bit PCM WAV files binaric
// transmits over.
package wavio

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/ausocean/binaric/codec/pcm"
	wavfmt "github.com/ausocean/binaric/codec/wav"
)

// ErrIO wraps failures reading or writing a WAV file (§7's IoError kind).
var ErrIO = errors.New("wav io error")

// FullScaleMargin is the safety margin subtracted from full scale when
// normalizing (§6 allows up to 10%); we use none, matching the prototype's
// "scale exactly to 32767" behaviour.
const FullScaleMargin = 0

// Write peak-normalizes samples so the loudest sample reaches int16 full
// scale (or is silent if samples is all zero) and writes them to path as a
// mono 16-bit PCM WAV file at sampleRate.
func Write(path string, samples []float64, sampleRate int) error {
	meta := wavfmt.Metadata{
		AudioFormat: wavfmt.PCMFormat,
		Channels:    1,
		SampleRate:  sampleRate,
		BitDepth:    16,
	}
	if err := meta.Validate(); err != nil {
		return errors.Wrapf(ErrIO, "invalid wav format: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrIO, "creating %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, wavfmt.PCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           NormalizeToPCM16(samples),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrapf(ErrIO, "writing %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(ErrIO, "closing %s: %v", path, err)
	}
	return nil
}

// NormalizeToPCM16 peak-normalizes samples to int16 full scale and returns
// the rounded integer values. An all-zero (or empty) buffer is returned
// unchanged as zeros.
func NormalizeToPCM16(samples []float64) []int {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	out := make([]int, len(samples))
	if peak == 0 {
		return out
	}
	scale := (32767.0 * (1 - FullScaleMargin)) / peak
	for i, s := range samples {
		out[i] = int(math.Round(s * scale))
	}
	return out
}

// Read decodes path as a WAV file, returning its samples as float64 in
// [-1, 1] and its sample rate. A stereo file is downmixed to mono via
// pcm.StereoToMono; any other channel count is an error.
func Read(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(ErrIO, "opening %s: %v", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, errors.Wrapf(ErrIO, "decoding %s: %v", path, err)
	}
	if !dec.WasPCMAccessed() {
		return nil, 0, errors.Wrapf(ErrIO, "%s: not a valid PCM wav file", path)
	}

	data := buf.Data
	channels := buf.Format.NumChannels
	if channels > 1 {
		mono, err := pcm.StereoToMono(pcm.BufferFromInts(data, uint(buf.Format.SampleRate), uint(channels)))
		if err != nil {
			return nil, 0, errors.Wrapf(ErrIO, "%s: downmixing stereo: %v", path, err)
		}
		data = pcm.IntsFromBuffer(mono)
	} else if channels != 1 {
		return nil, 0, errors.Errorf("%s: unsupported channel count %d", path, channels)
	}

	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v) / 32768.0
	}
	return samples, buf.Format.SampleRate, nil
}

/*
NAME
  wav.go

DESCRIPTION
  wav.go validates the WAV format metadata binaric requires: 16-bit PCM,
  mono, a positive sample rate. The hand-rolled RIFF header writer this
  package used to contain is superseded by go-audio/wav (see wavio), which
  does real chunk-aware encoding and decoding; what remains is the format
  invariant check wavio runs before handing data to that encoder.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wav defines the WAV format metadata binaric transmissions use and
// validates it against the codec's mono 16-bit PCM requirement.
package wav

import "fmt"

// PCMFormat is the WAVE format tag for uncompressed PCM.
const PCMFormat = 1

var (
	errInvalidFormat   = fmt.Errorf("invalid or no format defined")
	errInvalidRate     = fmt.Errorf("invalid or no sample rate defined")
	errInvalidChannels = fmt.Errorf("invalid or no number of channels defined")
	errInvalidBitDepth = fmt.Errorf("invalid or no bit depth defined")
	errNotMono         = fmt.Errorf("binaric requires a mono wav file")
	errNot16Bit        = fmt.Errorf("binaric requires 16-bit pcm samples")
)

// Metadata describes a WAV file's format chunk.
type Metadata struct {
	AudioFormat int
	Channels    int
	SampleRate  int
	BitDepth    int
}

// Validate checks m against binaric's WAV requirements: uncompressed PCM,
// mono, 16-bit samples, a positive sample rate.
func (m Metadata) Validate() error {
	if m.AudioFormat != PCMFormat {
		return errInvalidFormat
	}
	if m.SampleRate <= 0 {
		return errInvalidRate
	}
	if m.Channels == 0 {
		return errInvalidChannels
	}
	if m.BitDepth == 0 {
		return errInvalidBitDepth
	}
	if m.Channels != 1 {
		return errNotMono
	}
	if m.BitDepth != 16 {
		return errNot16Bit
	}
	return nil
}

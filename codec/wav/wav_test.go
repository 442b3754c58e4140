/*
NAME
  wav_test.go

DESCRIPTION
  wav_test.go tests Metadata.Validate.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wav

import "testing"

func TestMetadataValidate(t *testing.T) {
	tests := []struct {
		name    string
		md      Metadata
		wantErr error
	}{
		{"valid mono 16-bit", Metadata{AudioFormat: PCMFormat, Channels: 1, SampleRate: 44100, BitDepth: 16}, nil},
		{"no format", Metadata{Channels: 1, SampleRate: 44100, BitDepth: 16}, errInvalidFormat},
		{"invalid format", Metadata{AudioFormat: 2, Channels: 1, SampleRate: 44100, BitDepth: 16}, errInvalidFormat},
		{"no sample rate", Metadata{AudioFormat: PCMFormat, Channels: 1, BitDepth: 16}, errInvalidRate},
		{"no channels", Metadata{AudioFormat: PCMFormat, SampleRate: 44100, BitDepth: 16}, errInvalidChannels},
		{"no bit depth", Metadata{AudioFormat: PCMFormat, Channels: 1, SampleRate: 44100}, errInvalidBitDepth},
		{"stereo rejected", Metadata{AudioFormat: PCMFormat, Channels: 2, SampleRate: 44100, BitDepth: 16}, errNotMono},
		{"8-bit rejected", Metadata{AudioFormat: PCMFormat, Channels: 1, SampleRate: 44100, BitDepth: 8}, errNot16Bit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.md.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

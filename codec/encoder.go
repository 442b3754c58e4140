/*
NAME
  encoder.go

DESCRIPTION
  encoder.go implements the top-level encoder pipeline of §4.6: frame the
  message, synthesize each section with its mode overlay, sum in the clock
  carrier, normalize, and write the WAV file.

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
	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/binaric/envelope"
	"github.com/ausocean/binaric/freqplan"
	"github.com/ausocean/binaric/synth"
	"github.com/ausocean/binaric/wavio"
)

// DefaultClockSpeed and DefaultSampleRate are the §3/§6 nominal transmission
// parameters.
const (
	DefaultClockSpeed = 5.0
	DefaultSampleRate = 44100
	maxWAVSampleCount = 1<<31 - 1 // §4.6's EncodeError::Oversized limit.
)

// ErrOversized is returned by Encode when the waveform would exceed the
// WAV format's sample count limit.
var ErrOversized = errors.New("binaric: encoded waveform exceeds wav sample limit")

// EncodeOptions configures Encode. The zero value selects DefaultClockSpeed
// and DefaultSampleRate.
type EncodeOptions struct {
	ClockSpeed float64
	SampleRate int
	Logger     logging.Logger
}

func (o EncodeOptions) withDefaults() EncodeOptions {
	if o.ClockSpeed <= 0 {
		o.ClockSpeed = DefaultClockSpeed
	}
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	return o
}

// Encode implements §4.6: it frames msg against plan, synthesizes the
// header/content/footer sections with their mode overlays, sums in the
// clock carrier, peak-normalizes and writes path as a mono 16-bit PCM WAV
// file.
func Encode(path string, msg envelope.Message, plan *freqplan.Plan, opts EncodeOptions) error {
	opts = opts.withDefaults()
	if opts.Logger != nil {
		opts.Logger.Info("encoding", "path", path, "clockSpeed", opts.ClockSpeed, "sampleRate", opts.SampleRate)
	}

	if err := plan.Validate(opts.SampleRate, 0); err != nil {
		return err
	}

	hBits, cBits, fBits, err := frame(msg, plan)
	if err != nil {
		return errors.Wrap(err, "binaric: framing message")
	}

	symbolDuration := 1.0 / opts.ClockSpeed

	hWave := synth.Symbols(hBits, plan.Header, symbolDuration, opts.SampleRate, synth.DefaultSymbolAmplitude)
	cWave := synth.Symbols(cBits, plan.Content, symbolDuration, opts.SampleRate, synth.DefaultSymbolAmplitude)
	fWave := synth.Symbols(fBits, plan.Footer, symbolDuration, opts.SampleRate, synth.DefaultSymbolAmplitude)

	hWave = synth.OverlayMode(hWave, plan.Modes[0], opts.SampleRate, synth.DefaultModeAmplitude)
	cWave = synth.OverlayMode(cWave, plan.Modes[1], opts.SampleRate, synth.DefaultModeAmplitude)
	fWave = synth.OverlayMode(fWave, plan.Modes[2], opts.SampleRate, synth.DefaultModeAmplitude)

	wave := make([]float64, 0, len(hWave)+len(cWave)+len(fWave))
	wave = append(wave, hWave...)
	wave = append(wave, cWave...)
	wave = append(wave, fWave...)

	if len(wave) > maxWAVSampleCount {
		return ErrOversized
	}

	totalDuration := float64(len(wave)) / float64(opts.SampleRate)
	clockWave := synth.Clock(plan.Clock, opts.ClockSpeed, totalDuration, opts.SampleRate, synth.DefaultClockAmplitude)
	for i := range wave {
		if i < len(clockWave) {
			wave[i] += clockWave[i]
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug("synthesized waveform", "samples", len(wave))
	}

	if err := wavio.Write(path, wave, opts.SampleRate); err != nil {
		return errors.Wrap(err, "binaric: writing wav")
	}
	return nil
}

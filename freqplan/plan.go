/*
NAME
  plan.go

DESCRIPTION
  plan.go loads and validates the frequency plan: the declarative mapping
  from transmission role (clock, header, content, footer, modes) to the Hz
  values that carry it. This plays the same role that revid/config.Config
  plays for revid — an explicit, validated value passed through the
  pipeline, never a package-level global.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package freqplan defines the binaric frequency plan and its validation
// rules.
package freqplan

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan is wrapped by every validation failure in Validate.
var ErrInvalidPlan = errors.New("invalid frequency plan")

// DefaultFFTSize is the spectrogram window size assumed when validating
// tone separation, matching dsp.DefaultWindowSize.
const DefaultFFTSize = 2048

// Plan is the declarative map from transmission role to carrier
// frequencies (Hz). Header, Content and Footer's list lengths define the
// symbol width (bits per symbol) for their section.
type Plan struct {
	Clock   [2]float64 `json:"clock" yaml:"clock"`
	Header  []float64  `json:"header" yaml:"header"`
	Content []float64  `json:"content" yaml:"content"`
	Footer  []float64  `json:"footer" yaml:"footer"`
	Modes   [3]float64 `json:"modes" yaml:"modes"`
}

// Load parses a frequency plan from its canonical JSON document form.
func Load(r io.Reader) (*Plan, error) {
	var p Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("freqplan: decoding json: %w", err)
	}
	return &p, nil
}

// LoadYAML parses a frequency plan from an equivalent YAML document — §6
// allows any encoding producing the same key-value structure.
func LoadYAML(r io.Reader) (*Plan, error) {
	var p Plan
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("freqplan: decoding yaml: %w", err)
	}
	return &p, nil
}

// HeaderWidth, ContentWidth and FooterWidth return the symbol width (bits
// per symbol) of their section.
func (p *Plan) HeaderWidth() int  { return len(p.Header) }
func (p *Plan) ContentWidth() int { return len(p.Content) }
func (p *Plan) FooterWidth() int  { return len(p.Footer) }

// AllTones returns every tone in the plan (clock, header, content, footer,
// modes) in role order, for validation.
func (p *Plan) AllTones() []float64 {
	tones := make([]float64, 0, 2+len(p.Header)+len(p.Content)+len(p.Footer)+3)
	tones = append(tones, p.Clock[:]...)
	tones = append(tones, p.Header...)
	tones = append(tones, p.Content...)
	tones = append(tones, p.Footer...)
	tones = append(tones, p.Modes[:]...)
	return tones
}

// Validate checks the invariants of §3: non-empty per-section tone lists,
// positive frequencies within Nyquist, and tones separated by more than the
// spectrogram bin width at fftSize. A fftSize of 0 selects DefaultFFTSize.
func (p *Plan) Validate(sampleRate int, fftSize int) error {
	if fftSize <= 0 {
		fftSize = DefaultFFTSize
	}
	if sampleRate <= 0 {
		return errors.Wrap(ErrInvalidPlan, "sample rate must be positive")
	}
	if len(p.Header) == 0 {
		return errors.Wrap(ErrInvalidPlan, "header must have at least one tone")
	}
	if len(p.Content) == 0 {
		return errors.Wrap(ErrInvalidPlan, "content must have at least one tone")
	}
	if len(p.Footer) == 0 {
		return errors.Wrap(ErrInvalidPlan, "footer must have at least one tone")
	}

	nyquist := float64(sampleRate) / 2
	tones := p.AllTones()
	for _, f := range tones {
		if f <= 0 {
			return errors.Wrapf(ErrInvalidPlan, "tone %v must be positive", f)
		}
		if f > nyquist {
			return errors.Wrapf(ErrInvalidPlan, "tone %v exceeds nyquist %v", f, nyquist)
		}
	}

	binWidth := float64(sampleRate) / float64(fftSize)
	for i := 0; i < len(tones); i++ {
		for j := i + 1; j < len(tones); j++ {
			d := tones[i] - tones[j]
			if d < 0 {
				d = -d
			}
			if d <= binWidth {
				return errors.Wrapf(ErrInvalidPlan,
					"tones %v and %v are separated by %v Hz, must exceed the bin width %v Hz",
					tones[i], tones[j], d, binWidth)
			}
		}
	}
	return nil
}

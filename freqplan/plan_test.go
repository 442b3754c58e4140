package freqplan

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func samplePlan() *Plan {
	return &Plan{
		Clock:   [2]float64{1000, 1200},
		Header:  []float64{3000, 3100, 3200},
		Content: []float64{4000, 4100, 4200, 4300, 4400, 4500, 4600, 4700},
		Footer:  []float64{5000, 5100, 5200},
		Modes:   [3]float64{2000, 2200, 2400},
	}
}

func TestLoadJSON(t *testing.T) {
	doc := `{
		"clock": [1000, 1200],
		"header": [3000, 3100, 3200],
		"content": [4000, 4100, 4200, 4300, 4400, 4500, 4600, 4700],
		"footer": [5000, 5100, 5200],
		"modes": [2000, 2200, 2400]
	}`
	p, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(samplePlan(), p); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `
clock: [1000, 1200]
header: [3000, 3100, 3200]
content: [4000, 4100, 4200, 4300, 4400, 4500, 4600, 4700]
footer: [5000, 5100, 5200]
modes: [2000, 2200, 2400]
`
	p, err := LoadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}
	if diff := cmp.Diff(samplePlan(), p); diff != "" {
		t.Errorf("LoadYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateOK(t *testing.T) {
	p := samplePlan()
	if err := p.Validate(44100, 0); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Plan)
	}{
		{"empty header", func(p *Plan) { p.Header = nil }},
		{"empty content", func(p *Plan) { p.Content = nil }},
		{"empty footer", func(p *Plan) { p.Footer = nil }},
		{"negative tone", func(p *Plan) { p.Header[0] = -100 }},
		{"zero tone", func(p *Plan) { p.Clock[0] = 0 }},
		{"exceeds nyquist", func(p *Plan) { p.Footer[0] = 40000 }},
		{"tones too close", func(p *Plan) { p.Header[0] = p.Content[0] + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := samplePlan()
			tt.mod(p)
			if err := p.Validate(44100, 0); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestWidths(t *testing.T) {
	p := samplePlan()
	if p.HeaderWidth() != 3 || p.ContentWidth() != 8 || p.FooterWidth() != 3 {
		t.Errorf("widths = %d/%d/%d, want 3/8/3", p.HeaderWidth(), p.ContentWidth(), p.FooterWidth())
	}
}

package wavio

import (
	"math"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/44100)
	}
	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := Write(path, samples, 44100); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, rate, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if rate != 44100 {
		t.Errorf("Read() rate = %d, want 44100", rate)
	}
	if len(got) != len(samples) {
		t.Fatalf("len(Read()) = %d, want %d", len(got), len(samples))
	}
}

func TestNormalizeToPCM16PeakIsFullScale(t *testing.T) {
	samples := []float64{0.1, -0.2, 0.4, -0.05}
	got := NormalizeToPCM16(samples)

	peak := 0
	for _, v := range got {
		if abs(v) > peak {
			peak = abs(v)
		}
	}
	if peak < 32766 || peak > 32767 {
		t.Errorf("peak normalized sample = %d, want ~32767", peak)
	}
}

func TestNormalizeToPCM16Silence(t *testing.T) {
	samples := make([]float64, 10)
	got := NormalizeToPCM16(samples)
	for i, v := range got {
		if v != 0 {
			t.Errorf("sample %d = %d, want 0 for silent input", i, v)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

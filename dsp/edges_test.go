package dsp

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{0, 5, 10})
	want := []float64{0, 0.5, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeConstant(t *testing.T) {
	got := Normalize([]float64{3, 3, 3})
	want := []float64{0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestGradient(t *testing.T) {
	got := Gradient([]float64{0, 1, 3, 3, 0})
	want := []float64{1, 1.5, 1, -1.5, -3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Gradient() = %v, want %v", got, want)
	}
}

func TestFindPeaks(t *testing.T) {
	values := []float64{0, 0.1, 0.9, 0.2, -0.8, 0.05}
	peaks := FindPeaks(values, 0.25, 1)
	want := []int{2, 4}
	if !reflect.DeepEqual(peaks, want) {
		t.Errorf("FindPeaks() = %v, want %v", peaks, want)
	}
}

func TestFindPeaksMinDistance(t *testing.T) {
	values := []float64{0.9, 0, 0.3, 0, 0.95}
	peaks := FindPeaks(values, 0.25, 5)
	if len(peaks) != 1 {
		t.Fatalf("FindPeaks() = %v, want 1 peak within distance window", peaks)
	}
	if peaks[0] != 4 {
		t.Errorf("FindPeaks() kept index %d, want strongest peak (4)", peaks[0])
	}
}

func TestDetectEdgesFewerThanTwo(t *testing.T) {
	spec := &Spectrogram{
		T: []float64{0, 1, 2},
		S: [][]float64{{0, 0, 0}},
	}
	frames, times := spec.DetectEdges([]int{0}, DefaultEdgeHeight, 1)
	if frames != nil || times != nil {
		t.Errorf("DetectEdges() = %v, %v, want nil, nil for silent input", frames, times)
	}
}

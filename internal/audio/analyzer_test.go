package audio

import (
	"math"
	"testing"
)

func sine(freq, sampleRate, amp float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func TestAnalyzerSilenceIsZero(t *testing.T) {
	a := NewAnalyzer(DefaultAnalyzerConfig(44100))
	if got := a.MidEnergy(make([]float64, DefaultFFTSize)); got != 0 {
		t.Fatalf("silence: got %v want 0", got)
	}
	if got := a.MidEnergy(nil); got != 0 {
		t.Fatalf("no samples: got %v want 0", got)
	}
}

func TestAnalyzerMidToneBeatsLowTone(t *testing.T) {
	const sr = 44100.0
	mid := NewAnalyzer(DefaultAnalyzerConfig(sr))
	low := NewAnalyzer(DefaultAnalyzerConfig(sr))
	var midE, lowE float64
	for i := 0; i < 10; i++ {
		midE = mid.MidEnergy(sine(1000, sr, 0.5, DefaultFFTSize))
		lowE = low.MidEnergy(sine(60, sr, 0.5, DefaultFFTSize))
	}
	if midE <= lowE {
		t.Fatalf("expected 1 kHz tone to dominate the mid band: mid=%v low=%v", midE, lowE)
	}
	if midE <= 0 || midE > 255 {
		t.Fatalf("mid energy out of range: %v", midE)
	}
}

func TestAnalyzerSmoothingRisesGradually(t *testing.T) {
	a := NewAnalyzer(DefaultAnalyzerConfig(44100))
	tone := sine(1500, 44100, 0.8, DefaultFFTSize)
	first := a.MidEnergy(tone)
	second := a.MidEnergy(tone)
	if second < first {
		t.Fatalf("smoothed energy should not fall on a steady tone: %v then %v", first, second)
	}
}

func TestAnalyzerEnergyBounded(t *testing.T) {
	a := NewAnalyzer(DefaultAnalyzerConfig(44100))
	loud := make([]float64, DefaultFFTSize)
	for i := range loud {
		if i%2 == 0 {
			loud[i] = 1
		} else {
			loud[i] = -1
		}
	}
	for i := 0; i < 20; i++ {
		if e := a.MidEnergy(sine(900, 44100, 1, 4096)); e < 0 || e > 255 {
			t.Fatalf("energy out of range: %v", e)
		}
		if e := a.MidEnergy(loud); e < 0 || e > 255 {
			t.Fatalf("energy out of range: %v", e)
		}
	}
}

func TestBandEnergyIndices(t *testing.T) {
	a := NewAnalyzer(AnalyzerConfig{Size: 8, SampleRate: 8, Smoothing: 0, LowHz: 1, HighHz: 2})
	// 4 bins over a 4 Hz nyquist: bins 1 and 2 cover 1-2 Hz.
	got := a.BandEnergy([]float64{100, 10, 20, 100})
	if got != 15 {
		t.Fatalf("got %v want 15", got)
	}
}

package audio

import (
	"errors"
	"testing"
)

type fakeCapture struct {
	samples  []float64
	seq      uint64
	rate     float64
	reads    int
	closed   bool
	closeErr error
}

func (f *fakeCapture) Snapshot(n int) ([]float64, uint64) {
	f.reads++
	if n < len(f.samples) {
		return f.samples[len(f.samples)-n:], f.seq
	}
	return f.samples, f.seq
}

func (f *fakeCapture) SampleRate() float64 { return f.rate }

func (f *fakeCapture) Close() error {
	f.closed = true
	return f.closeErr
}

func TestFeatureWithoutCaptureIsNeutral(t *testing.T) {
	f := NewFeature(nil, DefaultAnalyzerConfig(0))
	for i := 0; i < 3; i++ {
		if got := f.Energy(); got != 0 {
			t.Fatalf("got %v want 0", got)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestFeatureReusesValueWithoutNewData(t *testing.T) {
	c := &fakeCapture{samples: sine(1000, 44100, 0.5, DefaultFFTSize), seq: 1, rate: 44100}
	f := NewFeature(c, DefaultAnalyzerConfig(0))

	first := f.Energy()
	if first <= 0 {
		t.Fatalf("expected positive energy, got %v", first)
	}
	if again := f.Energy(); again != first {
		t.Fatalf("unchanged capture must repeat last value: %v vs %v", again, first)
	}

	c.seq++
	if next := f.Energy(); next < first {
		t.Fatalf("steady tone should not lose energy after smoothing: %v < %v", next, first)
	}
}

func TestFeatureEmptyCaptureIsZero(t *testing.T) {
	f := NewFeature(&fakeCapture{rate: 44100}, DefaultAnalyzerConfig(0))
	if got := f.Energy(); got != 0 {
		t.Fatalf("got %v want 0", got)
	}
}

func TestFeatureSwapClosesPrevious(t *testing.T) {
	wantErr := errors.New("boom")
	old := &fakeCapture{rate: 44100, closeErr: wantErr}
	f := NewFeature(old, DefaultAnalyzerConfig(0))

	next := &fakeCapture{samples: sine(800, 48000, 0.5, 256), seq: 1, rate: 48000}
	if err := f.Swap(next); !errors.Is(err, wantErr) {
		t.Fatalf("expected close error to surface, got %v", err)
	}
	if !old.closed {
		t.Fatal("previous capture was not closed")
	}
	if f.analyzer.cfg.SampleRate != 48000 {
		t.Fatalf("analyzer not rebound to new sample rate: %v", f.analyzer.cfg.SampleRate)
	}
	if f.Energy() <= 0 {
		t.Fatal("expected energy from swapped capture")
	}
}

package audio

import (
	"reflect"
	"testing"
)

func TestRingSnapshotChronologicalAfterWrap(t *testing.T) {
	r := NewRing(4, 44100)
	r.WriteFloat32([]float32{1, 2, 3})
	r.WriteFloat32([]float32{4, 5, 6})

	got, seq := r.Snapshot(4)
	if want := []float64{3, 4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected snapshot: got %v want %v", got, want)
	}
	if seq != 2 {
		t.Fatalf("unexpected sequence: got %d want 2", seq)
	}

	got, _ = r.Snapshot(2)
	if want := []float64{5, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected partial snapshot: got %v want %v", got, want)
	}
}

func TestRingSnapshotLimitedToFilled(t *testing.T) {
	r := NewRing(8, 44100)
	if got, seq := r.Snapshot(8); got != nil || seq != 0 {
		t.Fatalf("expected empty snapshot, got %v seq %d", got, seq)
	}
	r.WriteFloat32([]float32{0.5})
	got, _ := r.Snapshot(8)
	if want := []float64{0.5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRingWriteStereoDownmixes(t *testing.T) {
	r := NewRing(4, 48000)
	r.WriteStereo([][2]float64{{1, 0}, {0.5, 0.5}})
	got, _ := r.Snapshot(2)
	if want := []float64{0.5, 0.5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if r.SampleRate() != 48000 {
		t.Fatalf("unexpected sample rate %v", r.SampleRate())
	}
}

func TestRingEmptyWriteKeepsSequence(t *testing.T) {
	r := NewRing(4, 44100)
	r.WriteFloat32(nil)
	r.WriteStereo(nil)
	if _, seq := r.Snapshot(1); seq != 0 {
		t.Fatalf("empty writes must not bump sequence, got %d", seq)
	}
}

package audio

import "github.com/faiface/beep"

// Tap wraps a beep.Streamer and records everything it streams into a Ring.
type Tap struct {
	Source beep.Streamer
	ring   *Ring
}

func NewTap(src beep.Streamer, ring *Ring) *Tap {
	return &Tap{Source: src, ring: ring}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.ring.WriteStereo(samples[:n])
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

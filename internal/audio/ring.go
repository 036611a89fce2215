package audio

import "sync"

// Ring records the most recent mono samples of a capture so the renderer can
// analyse them without waiting on the audio thread.
type Ring struct {
	mu         sync.RWMutex
	buffer     []float64
	nextIndex  int
	filled     int
	seq        uint64
	sampleRate float64
}

func NewRing(size int, sampleRate float64) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{
		buffer:     make([]float64, size),
		sampleRate: sampleRate,
	}
}

func (r *Ring) SampleRate() float64 { return r.sampleRate }

func (r *Ring) push(v float64) {
	r.buffer[r.nextIndex] = v
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
	}
	if r.filled < len(r.buffer) {
		r.filled++
	}
}

// WriteFloat32 appends mono samples, as delivered by an input stream callback.
func (r *Ring) WriteFloat32(samples []float32) {
	if len(samples) == 0 {
		return
	}
	r.mu.Lock()
	for _, s := range samples {
		r.push(float64(s))
	}
	r.seq++
	r.mu.Unlock()
}

// WriteStereo appends stereo frames downmixed to mono.
func (r *Ring) WriteStereo(samples [][2]float64) {
	if len(samples) == 0 {
		return
	}
	r.mu.Lock()
	for _, s := range samples {
		r.push((s[0] + s[1]) * 0.5)
	}
	r.seq++
	r.mu.Unlock()
}

// Snapshot returns up to the last n samples in chronological order, along
// with a sequence number that changes whenever new samples arrive.
func (r *Ring) Snapshot(n int) ([]float64, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > r.filled {
		n = r.filled
	}
	if n <= 0 {
		return nil, r.seq
	}
	out := make([]float64, n)
	idx := r.nextIndex - n
	if idx < 0 {
		idx += len(r.buffer)
	}
	for i := 0; i < n; i++ {
		out[i] = r.buffer[idx]
		idx++
		if idx >= len(r.buffer) {
			idx = 0
		}
	}
	return out, r.seq
}

// Close is a no-op so a bare Ring satisfies Capture.
func (r *Ring) Close() error { return nil }

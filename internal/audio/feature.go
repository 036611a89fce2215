package audio

// Capture is a live sample feed that can be read without blocking.
type Capture interface {
	Snapshot(n int) ([]float64, uint64)
	SampleRate() float64
	Close() error
}

// Feature produces one mid-band energy value per frame from a Capture. With
// no capture it reports 0, so rendering never depends on an audio device.
type Feature struct {
	cfg      AnalyzerConfig
	capture  Capture
	analyzer *Analyzer
	lastSeq  uint64
	last     float64
	seen     bool
}

// NewFeature binds an analyzer to c. c may be nil. The sample rate in cfg is
// replaced by the capture's.
func NewFeature(c Capture, cfg AnalyzerConfig) *Feature {
	f := &Feature{cfg: cfg}
	f.bind(c)
	return f
}

func (f *Feature) bind(c Capture) {
	f.capture = c
	f.analyzer = nil
	f.seen = false
	f.last = 0
	if c == nil {
		return
	}
	cfg := f.cfg
	cfg.SampleRate = c.SampleRate()
	f.analyzer = NewAnalyzer(cfg)
}

// Energy returns the current mid-band energy in [0, 255]. When the capture
// has produced nothing new since the last call the previous value is returned.
func (f *Feature) Energy() float64 {
	if f.capture == nil {
		return 0
	}
	samples, seq := f.capture.Snapshot(f.analyzer.cfg.Size)
	if f.seen && seq == f.lastSeq {
		return f.last
	}
	f.seen = true
	f.lastSeq = seq
	if len(samples) == 0 {
		f.last = 0
		return 0
	}
	f.last = f.analyzer.MidEnergy(samples)
	return f.last
}

// Swap closes the current capture and binds c in its place.
func (f *Feature) Swap(c Capture) error {
	var err error
	if f.capture != nil {
		err = f.capture.Close()
	}
	f.bind(c)
	return err
}

func (f *Feature) Close() error { return f.Swap(nil) }

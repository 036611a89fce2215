package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const (
	DefaultFFTSize   = 1024
	DefaultSmoothing = 0.8
	MidLowHz         = 400.0
	MidHighHz        = 2600.0

	minDecibels = -100.0
	maxDecibels = -30.0
	maxEnergy   = 255.0
)

// AnalyzerConfig describes the spectral window and the band summarised by an Analyzer.
type AnalyzerConfig struct {
	Size       int
	SampleRate float64
	Smoothing  float64
	LowHz      float64
	HighHz     float64
}

// DefaultAnalyzerConfig returns a 1024-point analysis of the 400-2600 Hz band.
func DefaultAnalyzerConfig(sampleRate float64) AnalyzerConfig {
	return AnalyzerConfig{
		Size:       DefaultFFTSize,
		SampleRate: sampleRate,
		Smoothing:  DefaultSmoothing,
		LowHz:      MidLowHz,
		HighHz:     MidHighHz,
	}
}

// Analyzer turns windows of samples into a smoothed byte-scale spectrum and
// reports the mean level of one frequency band.
type Analyzer struct {
	cfg      AnalyzerConfig
	window   []float64
	smoothed []float64
	buf      []float64
}

func NewAnalyzer(cfg AnalyzerConfig) *Analyzer {
	if cfg.Size < 2 {
		cfg.Size = DefaultFFTSize
	}
	window := make([]float64, cfg.Size)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(cfg.Size-1)))
	}
	return &Analyzer{
		cfg:      cfg,
		window:   window,
		smoothed: make([]float64, cfg.Size/2),
		buf:      make([]float64, cfg.Size),
	}
}

// Spectrum analyses the newest Size samples (zero-padded at the front when
// fewer are given) and returns the spectrum scaled to [0, 255].
func (a *Analyzer) Spectrum(samples []float64) []float64 {
	n := a.cfg.Size
	if len(samples) > n {
		samples = samples[len(samples)-n:]
	}
	pad := n - len(samples)
	for i := 0; i < n; i++ {
		v := 0.0
		if i >= pad {
			v = samples[i-pad]
		}
		a.buf[i] = v * a.window[i]
	}

	bins := fft.FFTReal(a.buf)
	out := make([]float64, len(a.smoothed))
	tau := a.cfg.Smoothing
	for k := range a.smoothed {
		mag := cmplx.Abs(bins[k]) / float64(n)
		a.smoothed[k] = tau*a.smoothed[k] + (1-tau)*mag
		out[k] = toByteScale(a.smoothed[k])
	}
	return out
}

func toByteScale(mag float64) float64 {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	v := maxEnergy * (db - minDecibels) / (maxDecibels - minDecibels)
	if v < 0 {
		return 0
	}
	if v > maxEnergy {
		return maxEnergy
	}
	return v
}

// BandEnergy returns the mean of spectrum over the configured band.
func (a *Analyzer) BandEnergy(spectrum []float64) float64 {
	if len(spectrum) == 0 || a.cfg.SampleRate <= 0 {
		return 0
	}
	nyquist := a.cfg.SampleRate / 2
	lo := int(math.Round(a.cfg.LowHz / nyquist * float64(len(spectrum))))
	hi := int(math.Round(a.cfg.HighHz / nyquist * float64(len(spectrum))))
	if lo < 0 {
		lo = 0
	}
	if hi >= len(spectrum) {
		hi = len(spectrum) - 1
	}
	if hi < lo {
		return 0
	}
	var sum float64
	for k := lo; k <= hi; k++ {
		sum += spectrum[k]
	}
	return sum / float64(hi-lo+1)
}

// MidEnergy analyses samples and returns the energy of the configured band.
func (a *Analyzer) MidEnergy(samples []float64) float64 {
	return a.BandEnergy(a.Spectrum(samples))
}

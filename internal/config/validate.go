package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FullscreenFallbackMS < 0 {
		errs = append(errs, fmt.Errorf("window: fullscreen_fallback_ms must not be negative"))
	}
	if c.Scene.StarCount <= 0 {
		errs = append(errs, fmt.Errorf("scene: star_count must be positive, got %d", c.Scene.StarCount))
	}
	errs = append(errs, c.Audio.validate()...)
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unsupported level %q", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging: unsupported format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func (a Audio) validate() []error {
	var errs []error
	if a.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio: sample_rate must be positive"))
	}
	if a.BufferSize <= 0 {
		errs = append(errs, fmt.Errorf("audio: buffer_size must be positive"))
	}
	if a.FFTSize < 32 || a.FFTSize&(a.FFTSize-1) != 0 {
		errs = append(errs, fmt.Errorf("audio: fft_size must be a power of two >= 32, got %d", a.FFTSize))
	}
	if a.Smoothing < 0 || a.Smoothing >= 1 {
		errs = append(errs, fmt.Errorf("audio: smoothing must be in [0,1), got %v", a.Smoothing))
	}
	if a.MidLowHz <= 0 || a.MidHighHz <= a.MidLowHz {
		errs = append(errs, fmt.Errorf("audio: mid band %v-%v Hz is invalid", a.MidLowHz, a.MidHighHz))
	}
	return errs
}

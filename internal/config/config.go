package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Galaxy - move the mouse to orbit, O: audio file, F: full screen, Esc/Q: quit"

	// Full screen button
	ButtonWidth  = 200
	ButtonHeight = 48
	ButtonX      = 20
	ButtonY      = 50

	FullscreenFallbackMS = 1000

	SampleRate = 44100
	BufferSize = 1024
	FFTSize    = 1024
	Smoothing  = 0.8
	MidLowHz   = 400
	MidHighHz  = 2600

	StarCount = 800
)

//go:embed sample_config.toml
var sampleConfig string

// Window contains the initial window settings.
type Window struct {
	Width                int    `toml:"width"`
	Height               int    `toml:"height"`
	Title                string `toml:"title"`
	Fullscreen           bool   `toml:"fullscreen"`
	FullscreenFallbackMS int    `toml:"fullscreen_fallback_ms"`
}

// Audio contains capture and analysis settings.
type Audio struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	BufferSize int     `toml:"buffer_size"`
	FFTSize    int     `toml:"fft_size"`
	Smoothing  float64 `toml:"smoothing"`
	MidLowHz   float64 `toml:"mid_low_hz"`
	MidHighHz  float64 `toml:"mid_high_hz"`
	File       string  `toml:"file"`
}

// Scene contains scene generation settings.
type Scene struct {
	StarCount int   `toml:"star_count"`
	Seed      int64 `toml:"seed"` // 0 seeds from the clock
}

// Logging contains logger settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full visualizer configuration.
type Config struct {
	Window  Window  `toml:"window"`
	Audio   Audio   `toml:"audio"`
	Scene   Scene   `toml:"scene"`
	Logging Logging `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:                WindowWidth,
			Height:               WindowHeight,
			Title:                WindowTitle,
			FullscreenFallbackMS: FullscreenFallbackMS,
		},
		Audio: Audio{
			Enabled:    true,
			SampleRate: SampleRate,
			BufferSize: BufferSize,
			FFTSize:    FFTSize,
			Smoothing:  Smoothing,
			MidLowHz:   MidLowHz,
			MidHighHz:  MidHighHz,
		},
		Scene: Scene{
			StarCount: StarCount,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// SampleConfig returns the commented sample configuration file.
func SampleConfig() string { return sampleConfig }

// DefaultPath returns the per-user configuration path.
func DefaultPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "galaxy-visualizer", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "galaxy-visualizer", "config.toml"), nil
}

// Load reads the configuration at path, or at DefaultPath when path is
// empty. A missing file yields the defaults with exists set to false.
func Load(path string) (*Config, string, bool, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, "", false, err
		}
		resolved = p
	}
	resolved = ExpandPath(resolved)

	cfg := Default()
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, resolved, false, nil
		}
		return nil, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.Audio.File = ExpandPath(cfg.Audio.File)
	return &cfg, resolved, true, nil
}

// Encode renders cfg as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// WriteSample writes the sample configuration to path, refusing to replace an
// existing file unless overwrite is set.
func WriteSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

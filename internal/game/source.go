package game

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/galaxy-visualization/internal/audio"
	"github.com/iburimskiy/galaxy-visualization/internal/audio/mic"
	"github.com/iburimskiy/galaxy-visualization/internal/audio/playback"
	"github.com/iburimskiy/galaxy-visualization/internal/config"
)

const (
	sourceNone = "none"
	sourceMic  = "microphone"
)

func analyzerConfig(cfg *config.Config) audio.AnalyzerConfig {
	ac := audio.DefaultAnalyzerConfig(float64(cfg.Audio.SampleRate))
	if cfg.Audio.FFTSize > 0 {
		ac.Size = cfg.Audio.FFTSize
	}
	if cfg.Audio.MidHighHz > cfg.Audio.MidLowHz && cfg.Audio.MidLowHz > 0 {
		ac.LowHz, ac.HighHz = cfg.Audio.MidLowHz, cfg.Audio.MidHighHz
	}
	ac.Smoothing = cfg.Audio.Smoothing
	return ac
}

// ringSize keeps a few analysis windows of history.
func ringSize(cfg *config.Config) int {
	return cfg.Audio.FFTSize * 4
}

// openInitialSource binds the configured file, else the microphone. Every
// failure falls through to the silent source.
func (g *Game) openInitialSource() {
	g.source = sourceNone
	if g.cfg.Audio.File != "" {
		if err := g.playFile(g.cfg.Audio.File); err != nil {
			g.logger.Warn("audio file unavailable, falling back", "path", g.cfg.Audio.File, "error", err)
		} else {
			return
		}
	}
	if !g.cfg.Audio.Enabled {
		g.logger.Info("audio disabled, rings use zero energy")
		return
	}
	capture, err := mic.Open(mic.Config{
		SampleRate: float64(g.cfg.Audio.SampleRate),
		BufferSize: g.cfg.Audio.BufferSize,
		RingSize:   ringSize(g.cfg),
	}, g.logger)
	if err != nil {
		g.logger.Warn("microphone unavailable, rings use zero energy", "error", err)
		return
	}
	g.swapSource(capture, sourceMic)
}

func (g *Game) swapSource(c audio.Capture, label string) {
	if err := g.feature.Swap(c); err != nil {
		g.logger.Warn("close previous audio source", "source", g.source, "error", err)
	}
	g.source = label
}

func (g *Game) playFile(path string) error {
	p, err := playback.Open(path, ringSize(g.cfg), g.logger)
	if err != nil {
		return err
	}
	g.swapSource(p, filepath.Base(path))
	g.player = p
	return nil
}

func (g *Game) openAudioFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: playback.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select audio file: %w", err)
	}
	g.lastErr = nil
	return g.playFile(filename)
}

func (g *Game) status() string {
	status := fmt.Sprintf("audio: %s | energy %3.0f", g.source, g.frame.Energy)
	if g.player != nil {
		status += " | " + formatDuration(g.player.Duration()) + " | Space: pause"
	}
	status += " | O: open file"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

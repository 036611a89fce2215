package game

import (
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/galaxy-visualization/internal/config"
	"github.com/iburimskiy/galaxy-visualization/internal/scene"
	"github.com/iburimskiy/galaxy-visualization/internal/ui"
)

func newSilentGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Scene.Seed = 1
	cfg.Scene.StarCount = 50
	g := New(&cfg, nil)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestSilentGameReportsNoAudio(t *testing.T) {
	g := newSilentGame(t)
	if g.source != sourceNone {
		t.Fatalf("unexpected source: %q", g.source)
	}
	g.tick(0, 0)
	if g.frame.Energy != 0 {
		t.Fatalf("silent game must have zero energy, got %v", g.frame.Energy)
	}
	if !strings.Contains(g.status(), "audio: none") {
		t.Fatalf("unexpected status: %q", g.status())
	}
}

func TestTickAdvancesFrameCounter(t *testing.T) {
	g := newSilentGame(t)
	g.tick(512, 384)
	g.tick(512, 384)
	if g.t != 2 || g.frame.T != 2 {
		t.Fatalf("unexpected frame counter: game %d frame %d", g.t, g.frame.T)
	}
	if len(g.frame.Stars) != 50 {
		t.Fatalf("unexpected star count: %d", len(g.frame.Stars))
	}
	if got := g.frame.Orientation; got != (scene.Orientation{}) {
		t.Fatalf("centered mouse should give neutral orientation, got %+v", got)
	}
}

func TestLayoutAdoptsOutsideSizeAndCompletesTransition(t *testing.T) {
	g := newSilentGame(t)
	requested := false
	g.fullscreen = ui.NewFullscreenControl(g.fullscreen.Bounds, func(bool) { requested = true }, nil)
	g.fullscreen.Activate()
	if !requested || !g.fullscreen.Pending() {
		t.Fatal("expected pending fullscreen request")
	}

	w, h := g.Layout(1920, 1080)
	if w != 1920 || h != 1080 {
		t.Fatalf("unexpected layout: %dx%d", w, h)
	}
	if g.fullscreen.Pending() {
		t.Fatal("size change must complete the transition")
	}
	g.tick(0, 1080)
	if got := g.frame.Orientation.Pitch; got != 90 {
		t.Fatalf("pitch at bottom of resized viewport: got %v want 90", got)
	}
}

func TestLayoutIgnoresUnchangedSize(t *testing.T) {
	g := newSilentGame(t)
	g.fullscreen = ui.NewFullscreenControl(g.fullscreen.Bounds, func(bool) {}, func() time.Time { return time.Unix(0, 0) })
	g.fullscreen.Activate()
	g.Layout(config.WindowWidth, config.WindowHeight)
	if !g.fullscreen.Pending() {
		t.Fatal("unchanged size must not count as a completed transition")
	}
}

func TestToRGBASaturates(t *testing.T) {
	c := toRGBA(scene.RGB{R: -10, G: 127.9, B: 400})
	if c.R != 0 || c.G != 127 || c.B != 255 || c.A != 255 {
		t.Fatalf("unexpected colour: %+v", c)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(75 * time.Second); got != "01:15" {
		t.Fatalf("got %q want 01:15", got)
	}
}

func TestAnalyzerConfigFollowsAudioSection(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.SampleRate = 48000
	cfg.Audio.FFTSize = 2048
	cfg.Audio.Smoothing = 0.5
	cfg.Audio.MidLowHz = 300
	cfg.Audio.MidHighHz = 3000

	got := analyzerConfig(&cfg)
	if got.SampleRate != 48000 || got.Size != 2048 || got.Smoothing != 0.5 {
		t.Fatalf("unexpected analyzer config: %+v", got)
	}
	if got.LowHz != 300 || got.HighHz != 3000 {
		t.Fatalf("unexpected band: %v-%v", got.LowHz, got.HighHz)
	}
}

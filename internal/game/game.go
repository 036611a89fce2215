package game

import (
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/galaxy-visualization/internal/audio"
	"github.com/iburimskiy/galaxy-visualization/internal/audio/playback"
	"github.com/iburimskiy/galaxy-visualization/internal/config"
	"github.com/iburimskiy/galaxy-visualization/internal/scene"
	"github.com/iburimskiy/galaxy-visualization/internal/ui"
)

// Game owns the application state: the starfield, the audio feature, the
// frame counter and the viewport. ebiten calls Update once per tick and Draw
// once per refresh.
type Game struct {
	cfg    *config.Config
	logger *slog.Logger

	composer *scene.Composer
	frame    scene.Frame
	renderer frameRenderer
	t        int

	feature *audio.Feature
	player  *playback.Player
	source  string

	width, height      int
	outsideW, outsideH int
	fullscreen         *ui.FullscreenControl
	buttonPressed      bool
	buttonHovered      bool
	lastErr            error
}

// New builds the game and acquires its audio source. Audio failures are
// logged and leave the energy at zero.
func New(cfg *config.Config, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	stars := scene.NewStarfield(cfg.Scene.StarCount, rand.New(rand.NewSource(seed)))

	g := &Game{
		cfg:      cfg,
		logger:   logger,
		composer: scene.NewComposer(stars),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		outsideW: cfg.Window.Width,
		outsideH: cfg.Window.Height,
	}
	g.fullscreen = ui.NewFullscreenControl(
		ui.Rect{X: config.ButtonX, Y: config.ButtonY, W: config.ButtonWidth, H: config.ButtonHeight},
		ebiten.SetFullscreen,
		nil,
	)
	g.fullscreen.Delay = time.Duration(cfg.Window.FullscreenFallbackMS) * time.Millisecond

	g.feature = audio.NewFeature(nil, analyzerConfig(cfg))
	g.openInitialSource()

	logger.Info("scene ready",
		"stars", stars.Len(),
		"seed", seed,
		"audio", g.source,
	)
	return g
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()

	g.buttonHovered = g.fullscreen.Visible() && g.fullscreen.Bounds.Contains(mouseX, mouseY)
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.fullscreen.Click(mouseX, mouseY) {
			g.logger.Info("full screen requested")
		}
		g.buttonPressed = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) && g.fullscreen.Visible() {
		g.fullscreen.Activate()
		g.logger.Info("full screen requested")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openAudioFileDialog(); err != nil {
			g.lastErr = err
			g.logger.Warn("open audio file", "error", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.player != nil {
		g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.fullscreen.Poll() {
		g.logger.Debug("full screen transition not reported, re-applying canvas size")
		g.applyViewport(g.outsideW, g.outsideH)
	}

	g.tick(float64(mouseX), float64(mouseY))
	return nil
}

// tick advances the frame counter and composes the next frame.
func (g *Game) tick(mouseX, mouseY float64) {
	g.t++
	g.frame = g.composer.Compose(scene.FrameState{
		T:      g.t,
		Energy: g.feature.Energy(),
		MouseX: mouseX,
		MouseY: mouseY,
		Width:  float64(g.width),
		Height: float64(g.height),
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.frame.Background))

	g.renderer.frame = &g.frame
	g.renderer.draw(screen)

	if g.fullscreen.Visible() {
		g.drawButton(screen)
	}
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.applyViewport(outsideWidth, outsideHeight)
		g.fullscreen.TransitionComplete()
	}
	return g.width, g.height
}

func (g *Game) applyViewport(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.width, g.height = w, h
}

// Close releases the audio source.
func (g *Game) Close() error {
	g.player = nil
	return g.feature.Close()
}

func (g *Game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	b := g.fullscreen.Bounds
	fillRect(screen, b, bgColor)
	strokeRect(screen, b, color.RGBA{R: 150, G: 170, B: 200, A: 255})

	text := "Full Screen"
	textWidth := len(text) * 6
	ebitenutil.DebugPrintAt(screen, text, b.X+(b.W-textWidth)/2, b.Y+(b.H-16)/2)
}

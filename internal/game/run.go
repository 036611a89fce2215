package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens the window and drives g until the user quits.
func Run(g *Game) error {
	defer func() {
		if err := g.Close(); err != nil {
			g.logger.Warn("close audio", "error", err)
		}
	}()

	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.cfg.Window.Fullscreen {
		g.fullscreen.Activate()
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	g.logger.Info("visualizer stopped", "frames", g.t)
	return nil
}

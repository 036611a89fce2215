package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/galaxy-visualization/internal/scene"
)

// toRGBA converts a 0-255 scene colour, saturating out-of-range channels.
func toRGBA(c scene.RGB) color.RGBA {
	c = c.Clamped()
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

func grayRGBA(v float64) color.RGBA { return toRGBA(scene.Gray(v)) }

// vertexColor converts a 0-255 scene colour to the 0-1 range ebiten vertices use.
func vertexColor(c scene.RGB) (r, g, b float32) {
	c = c.Clamped()
	return float32(c.R / 255), float32(c.G / 255), float32(c.B / 255)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

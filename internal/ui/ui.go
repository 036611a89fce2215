// Package ui holds the host-independent state of the on-screen controls.
package ui

import "time"

// DefaultFallbackDelay is how long FullscreenControl waits for the host to
// report a completed fullscreen transition before re-applying the size itself.
const DefaultFallbackDelay = time.Second

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// FullscreenControl is the one-shot "Full Screen" button. Activating it hides
// the button and requests fullscreen. The caller should re-apply the canvas
// size when the host reports the transition or, failing that, when Poll says
// the fallback delay has elapsed.
type FullscreenControl struct {
	Bounds  Rect
	Delay   time.Duration
	visible bool
	pending bool
	due     time.Time

	setFullscreen func(bool)
	now           func() time.Time
}

// NewFullscreenControl returns a visible control. now may be nil to use time.Now.
func NewFullscreenControl(bounds Rect, setFullscreen func(bool), now func() time.Time) *FullscreenControl {
	if now == nil {
		now = time.Now
	}
	return &FullscreenControl{
		Bounds:        bounds,
		Delay:         DefaultFallbackDelay,
		visible:       true,
		setFullscreen: setFullscreen,
		now:           now,
	}
}

func (c *FullscreenControl) Visible() bool { return c.visible }

// Pending reports whether a fullscreen transition is still awaited.
func (c *FullscreenControl) Pending() bool { return c.pending }

// Activate removes the control and requests fullscreen. It does nothing once
// the control is gone.
func (c *FullscreenControl) Activate() {
	if !c.visible {
		return
	}
	c.visible = false
	if c.setFullscreen != nil {
		c.setFullscreen(true)
	}
	c.pending = true
	c.due = c.now().Add(c.Delay)
}

// Click activates the control when (x, y) hits it. It reports whether it did.
func (c *FullscreenControl) Click(x, y int) bool {
	if !c.visible || !c.Bounds.Contains(x, y) {
		return false
	}
	c.Activate()
	return true
}

// TransitionComplete is the host's signal that the new size is in effect.
func (c *FullscreenControl) TransitionComplete() {
	c.pending = false
}

// Poll returns true once when the fallback delay has passed without a
// TransitionComplete.
func (c *FullscreenControl) Poll() bool {
	if !c.pending || c.now().Before(c.due) {
		return false
	}
	c.pending = false
	return true
}

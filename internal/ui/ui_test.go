package ui

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestControl() (*FullscreenControl, *fakeClock, *[]bool) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	var requests []bool
	c := NewFullscreenControl(Rect{X: 20, Y: 50, W: 200, H: 48}, func(on bool) {
		requests = append(requests, on)
	}, clock.now)
	return c, clock, &requests
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{15, 15, true},
		{12, 9, false},
		{16, 12, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%d,%d): got %v want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestClickOutsideDoesNothing(t *testing.T) {
	c, _, requests := newTestControl()
	if c.Click(0, 0) {
		t.Fatal("click outside bounds must not activate")
	}
	if !c.Visible() || len(*requests) != 0 {
		t.Fatalf("unexpected state: visible=%v requests=%v", c.Visible(), *requests)
	}
}

func TestActivateRemovesControlAndRequestsFullscreen(t *testing.T) {
	c, _, requests := newTestControl()
	if !c.Click(30, 60) {
		t.Fatal("expected click to activate")
	}
	if c.Visible() {
		t.Fatal("control must remove itself")
	}
	if len(*requests) != 1 || !(*requests)[0] {
		t.Fatalf("expected one fullscreen request, got %v", *requests)
	}
	if c.Click(30, 60) {
		t.Fatal("removed control must not activate again")
	}
}

func TestFallbackFiresOnceAfterDelay(t *testing.T) {
	c, clock, _ := newTestControl()
	c.Activate()
	clock.t = clock.t.Add(999 * time.Millisecond)
	if c.Poll() {
		t.Fatal("fallback fired early")
	}
	clock.t = clock.t.Add(time.Millisecond)
	if !c.Poll() {
		t.Fatal("fallback did not fire after delay")
	}
	if c.Poll() {
		t.Fatal("fallback fired twice")
	}
}

func TestTransitionCompleteCancelsFallback(t *testing.T) {
	c, clock, _ := newTestControl()
	c.Activate()
	c.TransitionComplete()
	clock.t = clock.t.Add(5 * time.Second)
	if c.Poll() {
		t.Fatal("fallback must not fire after host reported completion")
	}
	if c.Pending() {
		t.Fatal("no transition should be pending")
	}
}

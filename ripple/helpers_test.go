package ripple

import (
	"image"
	"time"

	"github.com/OpticalFlyer/ripplecompat/anim"
	"github.com/OpticalFlyer/ripplecompat/ui"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLoop() (*anim.Loop, *fakeClock) {
	clock := &fakeClock{now: time.Unix(5000, 0)}
	return anim.NewLoop(clock), clock
}

type drawnCircle struct {
	circle Circle
	paint  ui.Paint
}

// recordingCanvas remembers what was drawn, in order.
type recordingCanvas struct {
	ops     []string
	circles []drawnCircle
	rects   []image.Rectangle
}

func (c *recordingCanvas) DrawCircle(cx, cy, radius float32, p *ui.Paint) {
	c.ops = append(c.ops, "circle")
	c.circles = append(c.circles, drawnCircle{circle: Circle{CX: cx, CY: cy, Radius: radius}, paint: *p})
}

func (c *recordingCanvas) DrawRect(r image.Rectangle, p *ui.Paint) {
	c.ops = append(c.ops, "rect")
	c.rects = append(c.rects, r)
}

type countingInvalidator struct {
	n int
}

func (c *countingInvalidator) Invalidate() { c.n++ }

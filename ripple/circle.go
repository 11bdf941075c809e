package ripple

import "github.com/OpticalFlyer/ripplecompat/ui"

// Circle is the ripple's geometry in view-local coordinates.
type Circle struct {
	CX, CY float32
	Radius float32
}

// Draw paints the circle with p. Radii of zero or less paint nothing.
func (c *Circle) Draw(canvas ui.Canvas, p *ui.Paint) {
	canvas.DrawCircle(c.CX, c.CY, c.Radius, p)
}

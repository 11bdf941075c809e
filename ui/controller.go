package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Controller manages all UI elements
type Controller struct {
	components []Component

	// captured receives the rest of a gesture after the Down that hit it.
	captured Component
	hovered  Component
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		components: make([]Component, 0),
	}
}

// Add adds a component to the UI. Later components are on top.
func (c *Controller) Add(comp Component) {
	c.components = append(c.components, comp)
}

// Components returns the managed components in drawing order.
func (c *Controller) Components() []Component {
	return c.components
}

// Update updates all UI elements
func (c *Controller) Update() error {
	for _, comp := range c.components {
		if err := comp.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws all UI elements
func (c *Controller) Draw(screen *ebiten.Image) {
	for _, comp := range c.components {
		comp.Draw(screen)
	}
}

// Dispatch routes a screen-space pointer event. A Down goes to the topmost
// component under the pointer, which then receives every event until the
// gesture ends, translated into its local coordinates.
func (c *Controller) Dispatch(ev PointerEvent) bool {
	if ev.Kind == PointerDown {
		c.captured = c.hit(ev.X, ev.Y)
	}
	target := c.captured
	if target == nil {
		return false
	}
	if ev.Kind == PointerUp || ev.Kind == PointerCancel {
		c.captured = nil
	}

	b := target.Bounds()
	local := PointerEvent{Kind: ev.Kind, X: ev.X - b.X, Y: ev.Y - b.Y}
	return target.DispatchPointer(local)
}

// UpdateHover marks the component under (x, y) as hovered.
func (c *Controller) UpdateHover(x, y float64) {
	next := c.hit(x, y)
	if next == c.hovered {
		return
	}
	if c.hovered != nil {
		c.hovered.SetHovered(false)
	}
	if next != nil {
		next.SetHovered(true)
	}
	c.hovered = next
}

// IsInteractingWithUI returns true while a component owns the pointer
func (c *Controller) IsInteractingWithUI() bool {
	return c.captured != nil
}

func (c *Controller) hit(x, y float64) Component {
	for i := len(c.components) - 1; i >= 0; i-- {
		if c.components[i].Bounds().Contains(x, y) {
			return c.components[i]
		}
	}
	return nil
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(screen *ebiten.Image, extra string) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\n%s", fps, tps, extra))
}

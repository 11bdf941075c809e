package ui

import "github.com/hajimehoshi/ebiten/v2"

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() Rectangle
	DispatchPointer(ev PointerEvent) bool
	SetHovered(hovered bool)
}

// Host is the part of a view a pointer listener sees.
type Host interface {
	Width() int
	Height() int
	// OnTouchEvent runs the view's own pointer handling.
	OnTouchEvent(ev PointerEvent) bool
}

// Invalidator is notified when a drawable needs to be redrawn.
type Invalidator interface {
	Invalidate()
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Padding is the inset between a view's edges and its content.
type Padding struct {
	Left, Top, Right, Bottom int
}

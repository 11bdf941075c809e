package ui

import (
	"image"
	"image/color"
	"slices"
)

// Opacity describes how a drawable covers the pixels under it.
type Opacity int

const (
	OpacityUnknown Opacity = iota
	OpacityTranslucent
	OpacityTransparent
	OpacityOpaque
)

// ColorFilter transforms colors as a drawable paints them.
type ColorFilter interface {
	Filter(c color.NRGBA) color.NRGBA
}

// Drawable is a stateful visual that a View uses as its background.
type Drawable interface {
	Draw(c Canvas)
	Bounds() image.Rectangle
	SetBounds(r image.Rectangle)
	State() []State
	// SetState reports whether the new state changed what the drawable shows.
	SetState(states []State) bool
	SetCallback(cb Invalidator)
	InvalidateSelf()
	Opacity() Opacity
	SetAlpha(alpha uint8)
	SetColorFilter(f ColorFilter)
}

// Hotspotter is implemented by drawables that track the pointer position.
type Hotspotter interface {
	SetHotspot(x, y float32)
}

// DrawableBase carries the bounds, state and callback every drawable has.
// Embed it and supply Draw, Opacity, SetAlpha and SetColorFilter.
type DrawableBase struct {
	bounds   image.Rectangle
	state    []State
	callback Invalidator
}

func (b *DrawableBase) Bounds() image.Rectangle {
	return b.bounds
}

func (b *DrawableBase) SetBounds(r image.Rectangle) {
	b.bounds = r
}

func (b *DrawableBase) State() []State {
	return b.state
}

// SetState stores states. The base drawable has no state-dependent visuals, so
// it always reports false.
func (b *DrawableBase) SetState(states []State) bool {
	if !slices.Equal(b.state, states) {
		b.state = slices.Clone(states)
	}
	return false
}

func (b *DrawableBase) SetCallback(cb Invalidator) {
	b.callback = cb
}

// Callback returns the current invalidation target, or nil.
func (b *DrawableBase) Callback() Invalidator {
	return b.callback
}

// InvalidateSelf asks the callback, if any, to redraw.
func (b *DrawableBase) InvalidateSelf() {
	if b.callback != nil {
		b.callback.Invalidate()
	}
}

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	_ Component   = (*View)(nil)
	_ Host        = (*View)(nil)
	_ Invalidator = (*View)(nil)
)

// View is a rectangular, clickable widget painted by a background drawable.
type View struct {
	x, y          int
	width, height int
	text          string
	padding       Padding
	onClick       func()

	background      Drawable
	backgroundDirty bool
	listener        PointerListener

	// State
	enabled   bool
	isHovered bool
	isPressed bool

	invalidations int
}

func NewView(x, y, width, height int, text string, onClick func()) *View {
	return &View{
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		text:    text,
		onClick: onClick,
		enabled: true,
	}
}

func (v *View) Width() int  { return v.width }
func (v *View) Height() int { return v.height }

func (v *View) Text() string { return v.text }

// SetSize resizes the view. The background is fitted to the new size on the
// next draw.
func (v *View) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.backgroundDirty = true
	v.Invalidate()
}

func (v *View) Padding() Padding { return v.padding }

func (v *View) SetPadding(p Padding) {
	v.padding = p
	v.Invalidate()
}

func (v *View) Background() Drawable { return v.background }

// SetBackground installs d as the background, taking over its invalidation
// callback. The previous background stops invalidating this view.
func (v *View) SetBackground(d Drawable) {
	if v.background != nil {
		v.background.SetCallback(nil)
	}
	v.background = d
	if d != nil {
		d.SetCallback(v)
		d.SetState(v.DrawableState())
	}
	v.backgroundDirty = true
	v.Invalidate()
}

func (v *View) SetPointerListener(l PointerListener) {
	v.listener = l
}

func (v *View) Enabled() bool { return v.enabled }

func (v *View) SetEnabled(enabled bool) {
	if v.enabled == enabled {
		return
	}
	v.enabled = enabled
	if !enabled {
		v.isPressed = false
	}
	v.refreshDrawableState()
}

func (v *View) Pressed() bool { return v.isPressed }

func (v *View) SetHovered(hovered bool) {
	if v.isHovered == hovered {
		return
	}
	v.isHovered = hovered
	v.refreshDrawableState()
}

// DrawableState returns the state set backgrounds should reflect.
func (v *View) DrawableState() []State {
	var states []State
	if v.enabled {
		states = append(states, StateEnabled)
	}
	if v.isPressed {
		states = append(states, StatePressed)
	}
	if v.isHovered {
		states = append(states, StateHovered)
	}
	return states
}

func (v *View) refreshDrawableState() {
	if v.background != nil && v.background.SetState(v.DrawableState()) {
		v.Invalidate()
	}
}

// Invalidate marks the view as needing a redraw.
func (v *View) Invalidate() {
	v.invalidations++
}

// Invalidations returns how many redraws have been requested so far.
func (v *View) Invalidations() int {
	return v.invalidations
}

func (v *View) Update() error {
	return nil
}

func (v *View) Draw(screen *ebiten.Image) {
	rect := image.Rect(v.x, v.y, v.x+v.width, v.y+v.height)

	if v.background != nil {
		if v.backgroundDirty {
			v.background.SetBounds(image.Rect(0, 0, v.width, v.height))
			v.backgroundDirty = false
		}
		v.background.Draw(NewImageCanvas(screen, rect))
	}

	// Draw border
	vector.StrokeRect(screen, float32(v.x), float32(v.y),
		float32(v.width), float32(v.height), 1, color.Black, true)

	if v.text != "" {
		ebitenutil.DebugPrintAt(screen, v.text, v.x+v.padding.Left, v.y+v.padding.Top)
	}
}

// DispatchPointer offers ev (in view-local coordinates) to the pointer
// listener, then to the view's own handling if the listener declines.
func (v *View) DispatchPointer(ev PointerEvent) bool {
	if v.listener != nil && v.enabled && v.listener.OnPointer(v, ev) {
		return true
	}
	return v.OnTouchEvent(ev)
}

// OnTouchEvent implements press and click behaviour.
func (v *View) OnTouchEvent(ev PointerEvent) bool {
	if !v.enabled {
		return false
	}
	inside := ev.X >= 0 && ev.X < float64(v.width) &&
		ev.Y >= 0 && ev.Y < float64(v.height)

	switch ev.Kind {
	case PointerDown:
		v.setHotspot(ev)
		v.isPressed = true
		v.refreshDrawableState()
	case PointerMove:
		v.setHotspot(ev)
		if v.isPressed && !inside {
			v.isPressed = false
			v.refreshDrawableState()
		}
	case PointerUp:
		if v.isPressed {
			v.isPressed = false
			v.refreshDrawableState()
			if v.onClick != nil {
				v.onClick()
			}
		}
	case PointerCancel:
		if v.isPressed {
			v.isPressed = false
			v.refreshDrawableState()
		}
	default:
		return false
	}
	return true
}

func (v *View) setHotspot(ev PointerEvent) {
	if h, ok := v.background.(Hotspotter); ok {
		h.SetHotspot(float32(ev.X), float32(ev.Y))
	}
}

func (v *View) Bounds() Rectangle {
	return Rectangle{
		X:      float64(v.x),
		Y:      float64(v.y),
		Width:  float64(v.width),
		Height: float64(v.height),
	}
}

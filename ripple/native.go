package ripple

import (
	"image/color"
	"math"
	"slices"

	"github.com/OpticalFlyer/ripplecompat/ui"
)

// nativePressedAlpha scales the state color's alpha while pressed.
const nativePressedAlpha = 0x40

var (
	_ ui.Drawable   = (*Native)(nil)
	_ ui.Hotspotter = (*Native)(nil)
)

// Native is the platform ripple primitive. It follows the view's pressed
// state and hotspot instead of listening to pointer events itself.
type Native struct {
	ui.DrawableBase

	colors  ui.ColorStateList
	content ui.Drawable
	mask    ui.Drawable
	paint   ui.Paint

	hotspot    Circle
	hasHotspot bool
	pressed    bool
}

// NewNative returns a platform ripple tinted by colors over content. content
// and mask may be nil.
func NewNative(colors ui.ColorStateList, content, mask ui.Drawable) *Native {
	return &Native{
		colors:  colors,
		content: content,
		mask:    mask,
		paint:   ui.NewPaint(true),
	}
}

// Colors returns the ripple color list.
func (n *Native) Colors() ui.ColorStateList {
	return n.colors
}

// Content returns the drawable under the ripple, or nil.
func (n *Native) Content() ui.Drawable {
	return n.content
}

// Pressed reports whether the ripple is currently showing.
func (n *Native) Pressed() bool {
	return n.pressed
}

func (n *Native) SetHotspot(x, y float32) {
	n.hotspot.CX, n.hotspot.CY = x, y
	n.hasHotspot = true
	if n.pressed {
		n.InvalidateSelf()
	}
}

func (n *Native) Draw(c ui.Canvas) {
	b := n.Bounds()
	if n.content != nil {
		n.content.SetBounds(b)
		n.content.Draw(c)
	}
	if !n.pressed {
		return
	}

	col := color.NRGBAModel.Convert(n.colors.ColorForState(n.State(), color.Transparent)).(color.NRGBA)
	col.A = uint8(uint16(col.A) * nativePressedAlpha / 0xff)
	n.paint.SetColor(col)

	circle := n.hotspot
	if !n.hasHotspot {
		circle.CX = float32(b.Min.X+b.Max.X) / 2
		circle.CY = float32(b.Min.Y+b.Max.Y) / 2
	}
	circle.Radius = float32(math.Hypot(float64(b.Dx()), float64(b.Dy())))
	circle.Draw(c, &n.paint)
}

func (n *Native) SetState(states []ui.State) bool {
	n.DrawableBase.SetState(states)

	changed := false
	if n.content != nil {
		changed = n.content.SetState(states)
	}
	pressed := slices.Contains(states, ui.StateEnabled) && slices.Contains(states, ui.StatePressed)
	if pressed != n.pressed {
		n.pressed = pressed
		changed = true
	}
	if changed {
		n.InvalidateSelf()
	}
	return changed
}

func (n *Native) Opacity() ui.Opacity {
	return ui.OpacityTranslucent
}

func (n *Native) SetAlpha(alpha uint8) {
	if n.content != nil {
		n.content.SetAlpha(alpha)
	}
}

func (n *Native) SetColorFilter(f ui.ColorFilter) {
	if n.content != nil {
		n.content.SetColorFilter(f)
	}
}

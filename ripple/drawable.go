// Package ripple draws touch-feedback ripples: an expanding, fading circle
// over a view's existing background.
//
// Drawable is the self-contained implementation. The Create* functions install
// it on a view, or hand the job to the platform ripple (Native) when the
// Platform says one is available.
package ripple

import (
	"image/color"
	"time"

	"github.com/OpticalFlyer/ripplecompat/anim"
	"github.com/OpticalFlyer/ripplecompat/ui"
)

const (
	// growDuration is how long the ripple takes to reach full size while held.
	growDuration = 3000 * time.Millisecond

	// settleDuration is the release animation, and the fade that runs with it.
	settleDuration = 450 * time.Millisecond

	endScale = 1.3

	// Ripple alpha is alphaCeiling - (touchMinAlpha + v*alphaRange).
	alphaCeiling  = 90
	touchMinAlpha = 20
	alphaRange    = 50
)

// Phase is where a drawable is in its touch lifecycle.
type Phase int

const (
	Idle Phase = iota
	Growing
	Settling
)

func (p Phase) String() string {
	switch p {
	case Growing:
		return "growing"
	case Settling:
		return "settling"
	}
	return "idle"
}

var (
	_ ui.Drawable        = (*Drawable)(nil)
	_ ui.PointerListener = (*Drawable)(nil)
)

// Drawable is an animated ripple layered over an optional original background.
// It is both the view's background and its pointer listener.
type Drawable struct {
	ui.DrawableBase

	loop *anim.Loop

	original        ui.Drawable
	ripplePaint     ui.Paint
	backgroundPaint ui.Paint
	touch           Circle

	fromCenter bool
	viewSize   int
	value      float64

	// current is the animator driving the geometry: growth while held,
	// settle after release. At most one exists at a time.
	current  *anim.Animator
	settling bool
}

// New returns a ripple whose animations run on loop.
func New(loop *anim.Loop) *Drawable {
	d := &Drawable{
		loop:            loop,
		ripplePaint:     ui.NewPaint(true),
		backgroundPaint: ui.NewPaint(true),
	}
	d.ripplePaint.Style = ui.Fill
	d.backgroundPaint.Style = ui.Fill
	return d
}

// SetColor sets the ripple fill color.
func (d *Drawable) SetColor(c color.Color) {
	d.ripplePaint.SetColor(c)
	d.InvalidateSelf()
}

// SetDrawable replaces the background drawn under the ripple. nil removes it.
func (d *Drawable) SetDrawable(background ui.Drawable) {
	d.original = background
	d.InvalidateSelf()
}

// Drawable returns the wrapped background, or nil.
func (d *Drawable) Drawable() ui.Drawable {
	return d.original
}

// SetEmanateFromCenter makes ripples start at the view's center instead of
// the touch point.
func (d *Drawable) SetEmanateFromCenter(fromCenter bool) {
	d.fromCenter = fromCenter
}

func (d *Drawable) EmanateFromCenter() bool {
	return d.fromCenter
}

// Circle returns a copy of the current ripple geometry.
func (d *Drawable) Circle() Circle {
	return d.touch
}

// AnimationValue returns the current animation progress in [0,1].
func (d *Drawable) AnimationValue() float64 {
	return d.value
}

// RippleAlpha returns the ripple paint's alpha.
func (d *Drawable) RippleAlpha() uint8 {
	return d.ripplePaint.Alpha()
}

// SetRippleAlpha overrides the ripple paint's alpha until the next animation tick.
func (d *Drawable) SetRippleAlpha(alpha uint8) {
	d.ripplePaint.SetAlpha(alpha)
}

// ViewSize returns the size the radius scales with, taken at the last Down.
func (d *Drawable) ViewSize() int {
	return d.viewSize
}

// Phase reports whether a growth or settle animation is running.
func (d *Drawable) Phase() Phase {
	if d.current == nil || !d.current.IsRunning() {
		return Idle
	}
	if d.settling {
		return Settling
	}
	return Growing
}

func (d *Drawable) Draw(c ui.Canvas) {
	if d.original != nil {
		d.original.SetBounds(d.Bounds())
		d.original.Draw(c)
	}
	d.touch.Draw(c, &d.ripplePaint)
}

// Opacity is unknown: the ripple never promises to cover the view.
func (d *Drawable) Opacity() ui.Opacity {
	return ui.OpacityUnknown
}

// State returns the original background's state when there is one.
func (d *Drawable) State() []ui.State {
	if d.original == nil {
		return d.DrawableBase.State()
	}
	s := d.original.State()
	d.original.InvalidateSelf()
	return s
}

// SetState forwards to the original background so its pressed and disabled
// visuals keep working under the ripple.
func (d *Drawable) SetState(states []ui.State) bool {
	if d.original == nil {
		return d.DrawableBase.SetState(states)
	}
	changed := d.original.SetState(states)
	d.original.InvalidateSelf()
	return changed
}

// SetAlpha is ignored; the animation owns the ripple alpha.
func (d *Drawable) SetAlpha(uint8) {}

// SetColorFilter is ignored.
func (d *Drawable) SetColorFilter(ui.ColorFilter) {}

// OnPointer runs the ripple state machine. Down is consumed after the view has
// seen it once; everything else is left for the view to handle.
func (d *Drawable) OnPointer(h ui.Host, ev ui.PointerEvent) bool {
	switch ev.Kind {
	case ui.PointerDown:
		d.onDown(h, ev.X, ev.Y)
		h.OnTouchEvent(ev)
		return true
	case ui.PointerUp, ui.PointerCancel:
		d.onUp()
	case ui.PointerMove:
		d.onMove(h, ev.X, ev.Y)
	}
	return false
}

func (d *Drawable) onDown(h ui.Host, x, y float64) {
	d.onMove(h, x, y)
	d.touch.Radius = 0
	if d.fromCenter {
		d.viewSize = max(h.Width()/2, h.Height()/2)
	} else {
		d.viewSize = max(h.Width(), h.Height())
	}

	if d.current == nil {
		d.current = anim.New(d.loop, 0, 1, growDuration, d.setAnimationValue)
		d.current.SetInterpolator(anim.Linear)
		d.settling = false
	}
	if !d.current.IsRunning() {
		d.current.Start()
	}
}

func (d *Drawable) onMove(h ui.Host, x, y float64) {
	if d.fromCenter {
		d.touch.CX = float32(h.Width() / 2)
		d.touch.CY = float32(h.Height() / 2)
	} else {
		d.touch.CX = float32(x)
		d.touch.CY = float32(y)
	}
	d.InvalidateSelf()
}

func (d *Drawable) onUp() {
	var played time.Duration
	if d.current != nil {
		played = d.current.CurrentPlayTime()
		d.current.Cancel()
		d.current = nil
	}

	settle := anim.New(d.loop, 0, 1, settleDuration, d.setAnimationValue)
	settle.SetInterpolator(anim.Linear)
	settle.OnEnd(func() {
		d.current = nil
		d.settling = false
	})
	d.current = settle
	d.settling = true
	settle.Start()
	settle.SetCurrentPlayTime(settleStart(played))

	fade := anim.New(d.loop, float64(d.ripplePaint.Alpha()), 0, settleDuration, func(v float64) {
		d.ripplePaint.SetAlpha(uint8(int(v)))
		d.InvalidateSelf()
	})
	fade.Start()
}

// setAnimationValue derives radius and alpha from animation progress.
func (d *Drawable) setAnimationValue(v float64) {
	d.value = v
	d.touch.Radius = float32(rippleRadius(v, d.viewSize))
	d.ripplePaint.SetAlpha(uint8(rippleAlpha(v)))
	d.InvalidateSelf()
}

func rippleRadius(v float64, viewSize int) float64 {
	return v * endScale * float64(viewSize)
}

func rippleAlpha(v float64) int {
	return alphaCeiling - (touchMinAlpha + int(v*alphaRange))
}

// settleStart maps time spent growing onto the settle animation so the radius
// does not jump on release. Whole milliseconds only.
func settleStart(played time.Duration) time.Duration {
	ms := float64(settleDuration.Milliseconds()) * (float64(played.Milliseconds()) / float64(growDuration.Milliseconds()))
	return time.Duration(int64(ms)) * time.Millisecond
}

package ripple

import (
	"image"
	"image/color"
	"log"

	"github.com/OpticalFlyer/ripplecompat/anim"
	"github.com/OpticalFlyer/ripplecompat/ui"
)

// View is what the Create functions need from a host view.
type View interface {
	ui.Host
	Background() ui.Drawable
	SetBackground(d ui.Drawable)
	Padding() ui.Padding
	SetPointerListener(l ui.PointerListener)
}

// Platform describes what the running platform can draw by itself.
type Platform struct {
	// NativeRipple is set when the platform ripple primitive is available.
	NativeRipple bool
}

// CreateCenterRipple installs a ripple that always starts at the view's center.
// Calling it twice wraps the first ripple in a second one.
func CreateCenterRipple(loop *anim.Loop, v View, primary color.Color) *Drawable {
	return install(loop, v, primary, true)
}

// CreateRippleCompat installs a ripple that starts at the touch point, unless
// the view's background already is one. It returns the ripple in use and
// whether it was created by this call.
func CreateRippleCompat(loop *anim.Loop, v View, primary color.Color) (*Drawable, bool) {
	if existing, ok := v.Background().(*Drawable); ok {
		log.Printf("[Ripple] background is already a ripple, leaving it in place")
		return existing, false
	}
	return install(loop, v, primary, false), true
}

// CreateRipple installs the best ripple the platform offers: the native
// primitive when available, otherwise a touch-point Drawable. Like
// CreateCenterRipple it does not guard against wrapping twice.
func CreateRipple(loop *anim.Loop, p Platform, v View, primary color.Color) ui.Drawable {
	if p.NativeRipple {
		return installNative(v, primary)
	}
	return install(loop, v, primary, false)
}

func installNative(v View, primary color.Color) *Native {
	colors := ui.ColorStateList{
		Specs:  [][]ui.State{{ui.StateEnabled}},
		Colors: []color.Color{primary},
	}
	n := NewNative(colors, v.Background(), nil)
	v.SetBackground(n)
	return n
}

func install(loop *anim.Loop, v View, primary color.Color, fromCenter bool) *Drawable {
	d := New(loop)
	d.SetDrawable(v.Background())
	d.SetColor(primary)
	d.SetEmanateFromCenter(fromCenter)

	// The padding is copied into the bounds as given; the view refits them
	// to its size before the first draw.
	pad := v.Padding()
	d.SetBounds(image.Rectangle{
		Min: image.Pt(pad.Left, pad.Top),
		Max: image.Pt(pad.Right, pad.Bottom),
	})

	v.SetPointerListener(d)
	v.SetBackground(d)
	return d
}

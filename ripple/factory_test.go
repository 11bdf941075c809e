package ripple

import (
	"image"
	"slices"
	"testing"

	"github.com/OpticalFlyer/ripplecompat/ui"
)

func newBackgroundView(w, h int) (*ui.View, *ui.ColorDrawable) {
	v := ui.NewView(0, 0, w, h, "", nil)
	bg := ui.NewColorDrawable(testGray)
	v.SetBackground(bg)
	return v, bg
}

func TestCreateRippleCompatInstalls(t *testing.T) {
	loop, _ := newTestLoop()
	v, bg := newBackgroundView(100, 100)
	v.SetPadding(ui.Padding{Left: 4, Top: 6, Right: 8, Bottom: 10})

	d, created := CreateRippleCompat(loop, v, testBlue)
	if !created {
		t.Fatal("first call did not create a ripple")
	}
	if v.Background() != d {
		t.Error("ripple is not the view background")
	}
	if d.Drawable() != bg {
		t.Error("ripple does not wrap the previous background")
	}
	if d.EmanateFromCenter() {
		t.Error("compat ripple emanates from center")
	}
	want := image.Rectangle{Min: image.Pt(4, 6), Max: image.Pt(8, 10)}
	if d.Bounds() != want {
		t.Errorf("bounds = %v, want %v", d.Bounds(), want)
	}

	// Installed as the pointer listener too.
	if !v.DispatchPointer(down(10, 10)) {
		t.Error("Down not consumed by the view")
	}
	if d.Phase() != Growing {
		t.Errorf("phase after dispatch = %v, want growing", d.Phase())
	}
}

func TestCreateRippleCompatGuard(t *testing.T) {
	loop, _ := newTestLoop()
	v, bg := newBackgroundView(100, 100)

	first, _ := CreateRippleCompat(loop, v, testBlue)
	second, created := CreateRippleCompat(loop, v, testBlue)

	if created {
		t.Error("second call created another ripple")
	}
	if second != first || v.Background() != first {
		t.Error("second call replaced the installed ripple")
	}
	if first.Drawable() != bg {
		t.Error("installed ripple no longer wraps the original background")
	}
}

func TestUnguardedFactoriesNest(t *testing.T) {
	tests := []struct {
		name   string
		create func(v *ui.View) *Drawable
	}{
		{
			name: "center",
			create: func(v *ui.View) *Drawable {
				loop, _ := newTestLoop()
				return CreateCenterRipple(loop, v, testBlue)
			},
		},
		{
			name: "best available without native",
			create: func(v *ui.View) *Drawable {
				loop, _ := newTestLoop()
				return CreateRipple(loop, Platform{}, v, testBlue).(*Drawable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, bg := newBackgroundView(60, 40)
			first := tt.create(v)
			second := tt.create(v)

			if v.Background() != second {
				t.Fatal("second ripple is not the background")
			}
			if second.Drawable() != first {
				t.Error("second ripple does not wrap the first")
			}
			if first.Drawable() != bg {
				t.Error("first ripple lost the original background")
			}
		})
	}
}

func TestCreateCenterRipple(t *testing.T) {
	loop, _ := newTestLoop()
	v, _ := newBackgroundView(200, 80)

	d := CreateCenterRipple(loop, v, testBlue)
	if !d.EmanateFromCenter() {
		t.Error("center ripple does not emanate from center")
	}
	if v.Background() != d {
		t.Error("center ripple not installed")
	}
}

func TestFactoriesAreDeterministic(t *testing.T) {
	build := func() Circle {
		loop, _ := newTestLoop()
		v, _ := newBackgroundView(120, 90)
		v.SetPadding(ui.Padding{Left: 2, Top: 2, Right: 2, Bottom: 2})
		d := CreateCenterRipple(loop, v, testBlue)
		v.DispatchPointer(down(7, 9))
		return d.Circle()
	}

	a, b := build(), build()
	if a != b {
		t.Errorf("same inputs gave %+v and %+v", a, b)
	}
}

func TestCreateRippleNative(t *testing.T) {
	loop, _ := newTestLoop()
	v, bg := newBackgroundView(100, 100)

	got := CreateRipple(loop, Platform{NativeRipple: true}, v, testBlue)
	n, ok := got.(*Native)
	if !ok {
		t.Fatalf("CreateRipple returned %T, want *Native", got)
	}
	if v.Background() != n {
		t.Error("native ripple not installed")
	}
	if n.Content() != bg {
		t.Error("native ripple does not keep the original background")
	}

	colors := n.Colors()
	if len(colors.Specs) != 1 || !slices.Equal(colors.Specs[0], []ui.State{ui.StateEnabled}) {
		t.Errorf("color specs = %v, want [[enabled]]", colors.Specs)
	}
	if len(colors.Colors) != 1 || colors.Colors[0] != testBlue {
		t.Errorf("colors = %v, want [%v]", colors.Colors, testBlue)
	}

	// No compat drawable, no listener: pointer input only changes view state.
	v.DispatchPointer(down(10, 10))
	if loop.Len() != 0 {
		t.Errorf("animators = %d, want 0", loop.Len())
	}
	if !n.Pressed() {
		t.Error("native ripple did not follow the pressed state")
	}
}

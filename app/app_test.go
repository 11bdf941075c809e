package app

import (
	"testing"

	"github.com/OpticalFlyer/ripplecompat/config"
	"github.com/OpticalFlyer/ripplecompat/ripple"
	"github.com/OpticalFlyer/ripplecompat/ui"
)

func newTestApp(t *testing.T, native string) *App {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default() error = %v", err)
	}
	a, err := New(cfg, Options{Native: native})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func backgrounds(a *App) []ui.Drawable {
	var out []ui.Drawable
	for _, c := range a.Controller().Components() {
		out = append(out, c.(*ui.View).Background())
	}
	return out
}

func TestNewInstallsRipples(t *testing.T) {
	a := newTestApp(t, config.NativeOff)
	bgs := backgrounds(a)
	if len(bgs) != 3 {
		t.Fatalf("views = %d, want 3", len(bgs))
	}

	center, ok := bgs[0].(*ripple.Drawable)
	if !ok || !center.EmanateFromCenter() {
		t.Errorf("view 0 background = %T, want center ripple", bgs[0])
	}
	compat, ok := bgs[1].(*ripple.Drawable)
	if !ok || compat.EmanateFromCenter() {
		t.Errorf("view 1 background = %T, want touch-point ripple", bgs[1])
	}
	if _, ok := bgs[2].(*ripple.Drawable); !ok {
		t.Errorf("view 2 background = %T, want compat ripple without native support", bgs[2])
	}
	if _, ok := compat.Drawable().(*ui.StateListDrawable); !ok {
		t.Errorf("ripple wraps %T, want the button background", compat.Drawable())
	}
}

func TestNewWithNativeRipple(t *testing.T) {
	a := newTestApp(t, config.NativeOn)
	if !a.Platform().NativeRipple {
		t.Fatal("native ripple not enabled")
	}

	bgs := backgrounds(a)
	if _, ok := bgs[2].(*ripple.Native); !ok {
		t.Errorf("view 2 background = %T, want native ripple", bgs[2])
	}
	// The explicit factories ignore the platform.
	if _, ok := bgs[0].(*ripple.Drawable); !ok {
		t.Errorf("view 0 background = %T, want compat ripple", bgs[0])
	}
}

func TestDispatchStartsRipple(t *testing.T) {
	a := newTestApp(t, config.NativeOff)
	view := a.Controller().Components()[1].(*ui.View)
	d := view.Background().(*ripple.Drawable)

	b := view.Bounds()
	a.Controller().Dispatch(ui.PointerEvent{Kind: ui.PointerDown, X: b.X + 10, Y: b.Y + 20})

	if d.Phase() != ripple.Growing {
		t.Errorf("phase = %v, want growing", d.Phase())
	}
	if c := d.Circle(); c.CX != 10 || c.CY != 20 {
		t.Errorf("circle = %+v, want local (10,20)", c)
	}
}

func TestResolvePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{in: config.NativeOn, want: true},
		{in: config.NativeOff, want: false},
		{in: config.NativeAuto, want: nativeRippleAvailable},
		{in: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		p, err := resolvePlatform(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolvePlatform(%q) error = %v", tt.in, err)
			continue
		}
		if p.NativeRipple != tt.want {
			t.Errorf("resolvePlatform(%q) = %v, want %v", tt.in, p.NativeRipple, tt.want)
		}
	}
}

package ui

import (
	"image"
	"image/color"
	"testing"
)

func TestStateSetMatches(t *testing.T) {
	tests := []struct {
		name   string
		spec   []State
		states []State
		want   bool
	}{
		{"empty spec", nil, []State{StatePressed}, true},
		{"required present", []State{StateEnabled}, []State{StateEnabled, StatePressed}, true},
		{"required missing", []State{StatePressed}, []State{StateEnabled}, false},
		{"negated absent", []State{Not(StateEnabled)}, nil, true},
		{"negated present", []State{Not(StateEnabled)}, []State{StateEnabled}, false},
		{"mixed", []State{StateEnabled, Not(StatePressed)}, []State{StateEnabled}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateSetMatches(tt.spec, tt.states); got != tt.want {
				t.Errorf("StateSetMatches(%v, %v) = %v, want %v", tt.spec, tt.states, got, tt.want)
			}
		})
	}
}

func TestColorStateList(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	l := ColorStateList{
		Specs:  [][]State{{StateEnabled}},
		Colors: []color.Color{red},
	}

	if got := l.ColorForState([]State{StateEnabled}, color.Transparent); got != red {
		t.Errorf("enabled color = %v, want %v", got, red)
	}
	if got := l.ColorForState(nil, color.Transparent); got != color.Transparent {
		t.Errorf("disabled color = %v, want transparent", got)
	}
}

func TestButtonBackgroundFollowsState(t *testing.T) {
	normal := color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	hovered := color.NRGBA{R: 180, G: 180, B: 180, A: 255}
	pressed := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	disabled := color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	d := NewButtonBackground(normal, hovered, pressed, disabled)

	tests := []struct {
		states []State
		want   color.NRGBA
	}{
		{nil, disabled},
		{[]State{StateEnabled}, normal},
		{[]State{StateEnabled, StateHovered}, hovered},
		{[]State{StateEnabled, StatePressed, StateHovered}, pressed},
		{[]State{StatePressed}, disabled},
	}

	for _, tt := range tests {
		d.SetState(tt.states)
		got := d.Current().(*ColorDrawable).Color()
		if got != tt.want {
			t.Errorf("states %v: color %v, want %v", tt.states, got, tt.want)
		}
	}
}

func TestStateListReportsChanges(t *testing.T) {
	d := NewButtonBackground(color.White, color.White, color.Black, color.White)

	if !d.SetState([]State{StateEnabled}) {
		t.Error("switching to enabled did not report a change")
	}
	if d.SetState([]State{StateEnabled}) {
		t.Error("same state reported a change")
	}
}

type rectCanvas struct {
	rects  []image.Rectangle
	colors []color.NRGBA
}

func (c *rectCanvas) DrawCircle(cx, cy, radius float32, p *Paint) {}

func (c *rectCanvas) DrawRect(r image.Rectangle, p *Paint) {
	c.rects = append(c.rects, r)
	c.colors = append(c.colors, p.Color())
}

func TestColorDrawable(t *testing.T) {
	d := NewColorDrawable(color.NRGBA{R: 10, G: 20, B: 30, A: 200})
	d.SetBounds(image.Rect(0, 0, 8, 4))

	if d.Opacity() != OpacityTranslucent {
		t.Errorf("Opacity() = %v, want translucent", d.Opacity())
	}

	d.SetColorFilter(Tint{Color: color.NRGBA{R: 1, G: 2, B: 3, A: 255}})
	d.SetAlpha(0x80)

	c := &rectCanvas{}
	d.Draw(c)
	if len(c.rects) != 1 || c.rects[0] != image.Rect(0, 0, 8, 4) {
		t.Fatalf("rects = %v", c.rects)
	}
	want := color.NRGBA{R: 1, G: 2, B: 3, A: 100}
	if c.colors[0] != want {
		t.Errorf("color = %v, want %v", c.colors[0], want)
	}
}

package ui

import (
	"image/color"
	"slices"
)

var _ Drawable = (*StateListDrawable)(nil)

type stateEntry struct {
	spec     []State
	drawable Drawable
}

// StateListDrawable shows the first child whose spec matches the current state.
type StateListDrawable struct {
	DrawableBase

	entries []stateEntry
	current int
}

func NewStateListDrawable() *StateListDrawable {
	return &StateListDrawable{current: -1}
}

// AddState appends a child shown when spec matches. Earlier entries win.
func (d *StateListDrawable) AddState(spec []State, drawable Drawable) {
	d.entries = append(d.entries, stateEntry{spec: slices.Clone(spec), drawable: drawable})
	d.SetState(d.State())
}

// Current returns the child being shown, or nil.
func (d *StateListDrawable) Current() Drawable {
	if d.current < 0 {
		return nil
	}
	return d.entries[d.current].drawable
}

func (d *StateListDrawable) SetState(states []State) bool {
	d.DrawableBase.SetState(states)

	next := -1
	for i, e := range d.entries {
		if StateSetMatches(e.spec, states) {
			next = i
			break
		}
	}
	if next == d.current {
		return false
	}
	d.current = next
	d.InvalidateSelf()
	return true
}

func (d *StateListDrawable) Draw(c Canvas) {
	cur := d.Current()
	if cur == nil {
		return
	}
	cur.SetBounds(d.Bounds())
	cur.Draw(c)
}

func (d *StateListDrawable) Opacity() Opacity {
	if cur := d.Current(); cur != nil {
		return cur.Opacity()
	}
	return OpacityTransparent
}

func (d *StateListDrawable) SetAlpha(alpha uint8) {
	for _, e := range d.entries {
		e.drawable.SetAlpha(alpha)
	}
}

func (d *StateListDrawable) SetColorFilter(f ColorFilter) {
	for _, e := range d.entries {
		e.drawable.SetColorFilter(f)
	}
}

// NewButtonBackground builds the usual flat button background: disabled,
// pressed and hovered colors over a normal color.
func NewButtonBackground(normal, hovered, pressed, disabled color.Color) *StateListDrawable {
	d := NewStateListDrawable()
	d.AddState([]State{Not(StateEnabled)}, NewColorDrawable(disabled))
	d.AddState([]State{StatePressed}, NewColorDrawable(pressed))
	d.AddState([]State{StateHovered}, NewColorDrawable(hovered))
	d.AddState(nil, NewColorDrawable(normal))
	return d
}

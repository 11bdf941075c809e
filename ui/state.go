package ui

import (
	"image/color"
	"slices"
)

// State is a drawable state flag. A negated state (see Not) in a spec means
// the flag must be absent.
type State int

const (
	StateEnabled State = iota + 1
	StatePressed
	StateFocused
	StateHovered
)

// Not negates s for use in state specs.
func Not(s State) State {
	return -s
}

// StateSetMatches reports whether states satisfies every entry in spec.
// An empty spec matches anything.
func StateSetMatches(spec, states []State) bool {
	for _, want := range spec {
		if want < 0 {
			if slices.Contains(states, -want) {
				return false
			}
			continue
		}
		if !slices.Contains(states, want) {
			return false
		}
	}
	return true
}

// ColorStateList maps state specs to colors. The first matching spec wins.
type ColorStateList struct {
	Specs  [][]State
	Colors []color.Color
}

// ColorForState returns the color for states, or def when nothing matches.
func (l ColorStateList) ColorForState(states []State, def color.Color) color.Color {
	for i, spec := range l.Specs {
		if i >= len(l.Colors) {
			break
		}
		if StateSetMatches(spec, states) {
			return l.Colors[i]
		}
	}
	return def
}

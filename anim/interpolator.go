package anim

import "math"

// Interpolator maps elapsed fraction [0,1] to progress [0,1].
type Interpolator func(t float64) float64

// Linear progresses at a constant rate.
func Linear(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly, speeding up through the middle.
// It is the default for new animators.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Package anim drives time-based value animations from the game's update loop.
//
// Everything here runs on the ebiten Update goroutine. Animators are ticked in the
// order they were started, once per Loop.Update.
package anim

import "time"

// Clock reports the current time to a Loop.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// Loop ticks running animators.
type Loop struct {
	clock  Clock
	active []*Animator
}

// NewLoop creates a loop reading time from clock. A nil clock uses the system clock.
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock()
	}
	return &Loop{clock: clock}
}

// Now returns the loop's current time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// Len returns the number of running animators.
func (l *Loop) Len() int {
	return len(l.active)
}

// Update advances every running animator to the current time.
// Animators started or cancelled by callbacks during the tick take effect
// on the next Update.
func (l *Loop) Update() {
	if len(l.active) == 0 {
		return
	}
	now := l.clock.Now()

	snapshot := make([]*Animator, len(l.active))
	copy(snapshot, l.active)
	for _, a := range snapshot {
		if a.running {
			a.tick(now)
		}
	}
}

func (l *Loop) add(a *Animator) {
	for _, existing := range l.active {
		if existing == a {
			return
		}
	}
	l.active = append(l.active, a)
}

func (l *Loop) remove(a *Animator) {
	for i, existing := range l.active {
		if existing == a {
			l.active = append(l.active[:i], l.active[i+1:]...)
			return
		}
	}
}

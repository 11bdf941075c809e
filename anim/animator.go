package anim

import "time"

// Animator moves a value from one number to another over a fixed duration.
type Animator struct {
	loop     *Loop
	from, to float64
	duration time.Duration
	interp   Interpolator
	onUpdate func(value float64)
	onEnd    []func()

	start   time.Time
	running bool
	value   float64
}

// New creates an animator on loop that reports values between from and to to
// onUpdate. It does nothing until Start is called.
func New(loop *Loop, from, to float64, duration time.Duration, onUpdate func(value float64)) *Animator {
	return &Animator{
		loop:     loop,
		from:     from,
		to:       to,
		duration: duration,
		interp:   AccelerateDecelerate,
		onUpdate: onUpdate,
		value:    from,
	}
}

// SetInterpolator replaces the timing curve.
func (a *Animator) SetInterpolator(interp Interpolator) {
	if interp == nil {
		interp = AccelerateDecelerate
	}
	a.interp = interp
}

// OnEnd registers fn to run when the animator reaches its end value.
// Cancelled animators never run their end callbacks.
func (a *Animator) OnEnd(fn func()) {
	a.onEnd = append(a.onEnd, fn)
}

// Duration returns the configured duration.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// Value returns the most recently applied value.
func (a *Animator) Value() float64 {
	return a.value
}

// IsRunning reports whether the animator is receiving ticks.
func (a *Animator) IsRunning() bool {
	return a.running
}

// Start begins the animation from the start value, applying it immediately.
// Starting a running animator rewinds it.
func (a *Animator) Start() {
	a.start = a.loop.Now()
	a.running = true
	a.loop.add(a)
	a.apply(0)
}

// Cancel stops the animation where it is.
func (a *Animator) Cancel() {
	if !a.running {
		return
	}
	a.running = false
	a.loop.remove(a)
}

// CurrentPlayTime returns how far into its duration a running animator is.
// Animators that are not running report 0.
func (a *Animator) CurrentPlayTime() time.Duration {
	if !a.running {
		return 0
	}
	played := a.loop.Now().Sub(a.start)
	if played < 0 {
		return 0
	}
	if played > a.duration {
		return a.duration
	}
	return played
}

// SetCurrentPlayTime seeks a running animator to played and applies the value
// for that point. The animator still ends on the next tick at or past its duration.
func (a *Animator) SetCurrentPlayTime(played time.Duration) {
	if !a.running {
		return
	}
	if played < 0 {
		played = 0
	}
	a.start = a.loop.Now().Add(-played)
	a.apply(a.fraction(played))
}

func (a *Animator) fraction(played time.Duration) float64 {
	if a.duration <= 0 {
		return 1
	}
	f := float64(played) / float64(a.duration)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

func (a *Animator) tick(now time.Time) {
	f := a.fraction(now.Sub(a.start))
	a.apply(f)
	if f < 1 {
		return
	}

	a.running = false
	a.loop.remove(a)
	for _, fn := range a.onEnd {
		fn()
	}
}

func (a *Animator) apply(f float64) {
	a.value = a.from + a.interp(f)*(a.to-a.from)
	if a.onUpdate != nil {
		a.onUpdate(a.value)
	}
}

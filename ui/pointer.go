package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerKind identifies what happened to the pointer.
type PointerKind int

const (
	PointerDown PointerKind = iota + 1
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is a single-pointer input event. X and Y are in the receiver's
// coordinate space.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// PointerListener gets first refusal on a view's pointer events. Returning
// true consumes the event.
type PointerListener interface {
	OnPointer(h Host, ev PointerEvent) bool
}

// PointerSample is the pointer state read in one frame.
type PointerSample struct {
	Pressed bool
	X, Y    float64
	// Touches is the number of active touch points.
	Touches int
}

// Tracker turns per-frame pointer samples into down/move/up/cancel events.
// Only one pointer is tracked; a second touch cancels the gesture and nothing
// more is reported until every pointer is lifted.
type Tracker struct {
	down      bool
	cancelled bool
	lastX     float64
	lastY     float64

	touchBuf []ebiten.TouchID
}

// Sample feeds one frame of pointer state and returns the resulting event.
func (t *Tracker) Sample(s PointerSample) (PointerEvent, bool) {
	if t.cancelled {
		if !s.Pressed {
			t.cancelled = false
		}
		return PointerEvent{}, false
	}

	switch {
	case s.Pressed && s.Touches > 1:
		if !t.down {
			t.cancelled = true
			return PointerEvent{}, false
		}
		t.down = false
		t.cancelled = true
		return PointerEvent{Kind: PointerCancel, X: t.lastX, Y: t.lastY}, true

	case s.Pressed && !t.down:
		t.down = true
		t.lastX, t.lastY = s.X, s.Y
		return PointerEvent{Kind: PointerDown, X: s.X, Y: s.Y}, true

	case s.Pressed:
		if s.X == t.lastX && s.Y == t.lastY {
			return PointerEvent{}, false
		}
		t.lastX, t.lastY = s.X, s.Y
		return PointerEvent{Kind: PointerMove, X: s.X, Y: s.Y}, true

	case t.down:
		t.down = false
		return PointerEvent{Kind: PointerUp, X: t.lastX, Y: t.lastY}, true
	}
	return PointerEvent{}, false
}

// Poll reads the current touch state from ebiten, falling back to the left
// mouse button when no finger is down.
func (t *Tracker) Poll() (PointerEvent, bool) {
	t.touchBuf = ebiten.AppendTouchIDs(t.touchBuf[:0])

	var s PointerSample
	if len(t.touchBuf) > 0 {
		x, y := ebiten.TouchPosition(t.touchBuf[0])
		s = PointerSample{Pressed: true, X: float64(x), Y: float64(y), Touches: len(t.touchBuf)}
	} else {
		x, y := ebiten.CursorPosition()
		s = PointerSample{
			Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			X:       float64(x),
			Y:       float64(y),
		}
	}
	return t.Sample(s)
}

// Package anim holds the frame-stepped animation primitives shared by the
// consumers and the page choreographer: one-shot tweens, mirrored loops and springs.
package anim

import (
	"time"

	"github.com/jagjit/cosmos-folio/vmath"
)

// Tween interpolates from -> to over a fixed duration
type Tween struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	ease     vmath.Easing
}

// NewTween creates a tween at its start value; zero duration completes on the first read
func NewTween(from, to float64, duration time.Duration, ease vmath.Easing) *Tween {
	if ease == nil {
		ease = vmath.Linear
	}
	return &Tween{from: from, to: to, duration: duration, ease: ease}
}

// Hold is a finished tween resting at v
func Hold(v float64) *Tween {
	return &Tween{from: v, to: v, ease: vmath.Linear}
}

// Step advances by dt and returns the new value
func (t *Tween) Step(dt time.Duration) float64 {
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
	return t.Value()
}

func (t *Tween) Value() float64 {
	p := t.Progress()
	if p >= 1 {
		return t.to
	}
	return vmath.Lerp(t.from, t.to, t.ease(p))
}

// Progress is linear completion in [0, 1]
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(t.elapsed) / float64(t.duration))
}

func (t *Tween) Done() bool { return t.elapsed >= t.duration }

func (t *Tween) Target() float64 { return t.to }

// Retarget restarts toward to from the current value, keeping continuity
func (t *Tween) Retarget(to float64, duration time.Duration, ease vmath.Easing) {
	if ease == nil {
		ease = t.ease
	}
	t.from = t.Value()
	t.to = to
	t.duration = duration
	t.elapsed = 0
	t.ease = ease
}

package engine

import (
	"context"
	"time"

	"github.com/jagjit/cosmos-folio/parameter"
)

// Loop drives frames in real time on a single goroutine
// Input events are handled between frames on the same goroutine, so handlers
// and frame callbacks never run concurrently
type Loop[E any] struct {
	interval time.Duration
	clock    TimeProvider

	lastFrame    time.Time
	nextDeadline time.Time
	frames       uint64
}

// NewLoop creates a loop ticking at fps
func NewLoop[E any](fps int, clock TimeProvider) *Loop[E] {
	if fps <= 0 {
		fps = parameter.FrameRate
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Loop[E]{
		interval: time.Second / time.Duration(fps),
		clock:    clock,
	}
}

func (l *Loop[E]) Interval() time.Duration { return l.interval }
func (l *Loop[E]) Frames() uint64          { return l.frames }

// Run blocks until ctx is cancelled, onEvent returns false, or events is closed
// onFrame receives the measured delta, capped at MaxFrameDelta
func (l *Loop[E]) Run(ctx context.Context, events <-chan E, onEvent func(E) bool, onFrame func(dt time.Duration)) error {
	now := l.clock.Now()
	l.lastFrame = now
	l.nextDeadline = now.Add(l.interval)

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !onEvent(ev) {
				return nil
			}

		case <-timer.C:
			now := l.clock.Now()
			dt := now.Sub(l.lastFrame)
			if dt > parameter.MaxFrameDelta {
				dt = parameter.MaxFrameDelta
			}
			if dt < 0 {
				dt = 0
			}
			l.lastFrame = now
			l.frames++
			onFrame(dt)

			l.nextDeadline = l.nextDeadline.Add(l.interval)
			if now.Sub(l.nextDeadline) > l.interval*parameter.FrameBehindLimit {
				l.nextDeadline = now.Add(l.interval)
			}

			sleep := l.nextDeadline.Sub(l.clock.Now())
			if sleep < 0 {
				sleep = 0
			}
			timer.Reset(sleep)
		}
	}
}

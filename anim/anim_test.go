package anim

import (
	"math"
	"testing"
	"time"

	"github.com/jagjit/cosmos-folio/vmath"
)

const frame = 16 * time.Millisecond

func TestTweenReachesTarget(t *testing.T) {
	tw := NewTween(1, 0.15, 1500*time.Millisecond, vmath.EaseInOut)
	if tw.Value() != 1 {
		t.Fatalf("Expected start value 1, got %f", tw.Value())
	}

	var elapsed time.Duration
	for !tw.Done() {
		tw.Step(frame)
		elapsed += frame
		if elapsed > 2*time.Second {
			t.Fatal("Tween did not finish")
		}
	}

	if tw.Value() != 0.15 {
		t.Errorf("Expected final 0.15, got %f", tw.Value())
	}
	if elapsed < 1500*time.Millisecond || elapsed > 1500*time.Millisecond+frame {
		t.Errorf("Expected completion within one frame of 1.5s, got %v", elapsed)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	tw := NewTween(0, 5, 0, nil)
	if !tw.Done() || tw.Value() != 5 {
		t.Errorf("Expected immediate completion at 5, got done=%v value=%f", tw.Done(), tw.Value())
	}
}

func TestTweenRetargetKeepsContinuity(t *testing.T) {
	tw := NewTween(0, 100, time.Second, nil)
	tw.Step(250 * time.Millisecond)
	before := tw.Value()

	tw.Retarget(0, time.Second, nil)
	if tw.Value() != before {
		t.Errorf("Expected value %f right after retarget, got %f", before, tw.Value())
	}
	tw.Step(time.Second)
	if tw.Value() != 0 {
		t.Errorf("Expected 0 after reversal, got %f", tw.Value())
	}
}

func TestMirroredLoop(t *testing.T) {
	m := NewMirrored(1, 1.1, 8*time.Second, vmath.EaseInOut)

	if got := m.Step(8 * time.Second); math.Abs(got-1.1) > 1e-9 {
		t.Errorf("Expected peak 1.1 after one leg, got %f", got)
	}
	if got := m.Step(8 * time.Second); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected back at 1 after two legs, got %f", got)
	}

	for i := 0; i < 1000; i++ {
		v := m.Step(37 * time.Millisecond)
		if v < 1-1e-9 || v > 1.1+1e-9 {
			t.Fatalf("Loop left its range: %f", v)
		}
	}

	still := NewMirrored(0.5, 1, 0, nil)
	if still.Step(time.Second) != 0.5 {
		t.Error("Expected zero period to rest at from")
	}
}

func TestPulseDelay(t *testing.T) {
	p := NewPulse(0.2, 1, 2*time.Second, nil).WithDelay(time.Second)
	if got := p.Step(900 * time.Millisecond); got != 0.2 {
		t.Errorf("Expected 0.2 during delay, got %f", got)
	}
	if got := p.Step(1100 * time.Millisecond); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected peak after half period, got %f", got)
	}
	if got := p.Step(time.Second); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Expected trough after full period, got %f", got)
	}
}

func TestSpringSettles(t *testing.T) {
	s := NewSpring(30, 0, 8, 0.6)
	settled := false
	for i := 0; i < 600; i++ {
		s.Step(frame)
		if s.Settled(0.05) {
			settled = true
			break
		}
	}
	if !settled {
		t.Fatalf("Spring did not settle, pos=%f vel=%f", s.Value(), s.Velocity())
	}
	if s.Value() != 0 || s.Velocity() != 0 {
		t.Errorf("Expected snap to target, got pos=%f vel=%f", s.Value(), s.Velocity())
	}
}

func TestSpringZeroDtNoop(t *testing.T) {
	s := NewSpring(10, 0, 8, 0.6)
	if s.Step(0) != 10 {
		t.Error("Expected zero dt to leave position untouched")
	}
}

package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring is a damped harmonic oscillator stepped with the frame delta
type Spring struct {
	frequency float64
	damping   float64
	pos, vel  float64
	target    float64
}

func NewSpring(pos, target, frequency, damping float64) *Spring {
	return &Spring{frequency: frequency, damping: damping, pos: pos, target: target}
}

// Step integrates over dt; coefficients depend on dt so they are rebuilt per frame
func (s *Spring) Step(dt time.Duration) float64 {
	if dt <= 0 {
		return s.pos
	}
	h := harmonica.NewSpring(dt.Seconds(), s.frequency, s.damping)
	s.pos, s.vel = h.Update(s.pos, s.vel, s.target)
	return s.pos
}

func (s *Spring) Value() float64    { return s.pos }
func (s *Spring) Velocity() float64 { return s.vel }

// Settled reports both displacement and velocity under eps, snapping to target when true
func (s *Spring) Settled(eps float64) bool {
	if math.Abs(s.pos-s.target) < eps && math.Abs(s.vel) < eps {
		s.pos, s.vel = s.target, 0
		return true
	}
	return false
}

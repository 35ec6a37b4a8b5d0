package anim

import (
	"time"

	"github.com/jagjit/cosmos-folio/vmath"
)

// Mirrored loops from -> to -> from forever, one leg per period
// Period <= 0 rests at from
type Mirrored struct {
	from, to float64
	period   time.Duration
	delay    time.Duration
	elapsed  time.Duration
	ease     vmath.Easing
}

func NewMirrored(from, to float64, period time.Duration, ease vmath.Easing) *Mirrored {
	if ease == nil {
		ease = vmath.Linear
	}
	return &Mirrored{from: from, to: to, period: period, ease: ease}
}

func (m *Mirrored) Step(dt time.Duration) float64 {
	m.elapsed += dt
	return m.Value()
}

func (m *Mirrored) Value() float64 {
	active := m.elapsed - m.delay
	if m.period <= 0 || active <= 0 {
		return m.from
	}
	phase := vmath.Mirror(active.Seconds(), m.period.Seconds())
	return vmath.Lerp(m.from, m.to, m.ease(phase))
}

// Pulse loops from -> to -> from within one period, then repeats
type Pulse struct {
	Mirrored
}

func NewPulse(from, to float64, period time.Duration, ease vmath.Easing) *Pulse {
	return &Pulse{Mirrored: *NewMirrored(from, to, period/2, ease)}
}

// WithDelay holds at from for d before the first cycle
func (p *Pulse) WithDelay(d time.Duration) *Pulse {
	p.delay = d
	return p
}

package system

import (
	"time"

	"github.com/jagjit/cosmos-folio/anim"
	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/route"
	"github.com/jagjit/cosmos-folio/vmath"
)

// Star is one twinkling point, X and Y are fractions of the viewport
type Star struct {
	X, Y    float64
	Large   bool
	Opacity float64
}

// TwinkleFrame is the render-boundary output of the background star field
type TwinkleFrame struct {
	FieldOpacity float64
	Stars        []Star
}

type twinkleStar struct {
	x, y  float64
	large bool
	pulse *anim.Pulse
}

// TwinkleSystem is the ambient star field shown away from home, independent of energy
type TwinkleSystem struct {
	name  string
	stars []twinkleStar
	field *anim.Tween
	away  bool
}

// NewTwinkleSystem scatters count stars using rng
func NewTwinkleSystem(name string, count int, rng vmath.Rand) *TwinkleSystem {
	stars := make([]twinkleStar, count)
	for i := range stars {
		period := time.Duration(vmath.Lerp(float64(parameter.TwinkleMinPeriod), float64(parameter.TwinkleMaxPeriod), rng.Float64()))
		delay := time.Duration(rng.Float64() * float64(parameter.TwinkleMaxDelay))
		stars[i] = twinkleStar{
			x:     rng.Float64(),
			y:     rng.Float64(),
			large: rng.Float64() < parameter.TwinkleLargeChance,
			pulse: anim.NewPulse(parameter.TwinkleMinOpacity, 1, period, vmath.EaseInOut).WithDelay(delay),
		}
	}
	return &TwinkleSystem{name: name, stars: stars, field: anim.Hold(0)}
}

func (t *TwinkleSystem) Name() string { return t.name }

func (t *TwinkleSystem) OnTick(_ float64, dt time.Duration) {
	t.field.Step(dt)
	if t.field.Value() == 0 && !t.away {
		return
	}
	for i := range t.stars {
		t.stars[i].pulse.Step(dt)
	}
}

// SetRoute fades the field in away from home and out on return
func (t *TwinkleSystem) SetRoute(path string) {
	away := !route.IsHome(path)
	if away == t.away {
		return
	}
	t.away = away
	target := 0.0
	if away {
		target = 1
	}
	t.field.Retarget(target, parameter.TwinkleFieldFade, vmath.EaseInOut)
}

func (t *TwinkleSystem) Frame() TwinkleFrame {
	f := TwinkleFrame{FieldOpacity: t.field.Value()}
	if f.FieldOpacity == 0 {
		return f
	}
	f.Stars = make([]Star, len(t.stars))
	for i, s := range t.stars {
		f.Stars[i] = Star{X: s.x, Y: s.y, Large: s.large, Opacity: s.pulse.Value()}
	}
	return f
}

package system

import (
	"time"

	"github.com/jagjit/cosmos-folio/anim"
	"github.com/jagjit/cosmos-folio/fsm"
	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/route"
	"github.com/jagjit/cosmos-folio/vmath"
)

// GlowVariant is the route-driven placement of a star
type GlowVariant uint8

const (
	VariantHome GlowVariant = iota
	VariantAway
)

func (v GlowVariant) String() string {
	if v == VariantAway {
		return "away"
	}
	return "home"
}

type glowEvent uint8

const (
	glowLeaveHome glowEvent = iota
	glowReturnHome
)

// GlowLayer is one concentric layer of a star
type GlowLayer struct {
	Name    string
	Scale   float64
	ScaleX  float64
	ScaleY  float64
	Opacity float64
}

// GlowFrame is the render-boundary output of one star
// Outer transform (OffsetVW, RouteScale) follows the route, inner transform follows energy
type GlowFrame struct {
	Side       Side
	Color      string
	Variant    GlowVariant
	OffsetVW   float64
	RouteScale float64
	Rotation   float64
	ScaleBoost float64
	Layers     [3]GlowLayer
}

// ScaleBoost grows the star with clamped energy
func ScaleBoost(energy float64) float64 {
	return 1 + safeGlowEnergy(energy)*parameter.GlowScalePerEnergy
}

// OpacityBoost is the extra opacity a layer gains from clamped energy
func OpacityBoost(energy, factor float64) float64 {
	return safeGlowEnergy(energy) * factor
}

func safeGlowEnergy(energy float64) float64 {
	return vmath.Clamp(energy, 0, parameter.GlowEnergyClamp)
}

// GlowSystem drives a pulsing star: breathing layers, energy swell and the home/away slide
type GlowSystem struct {
	name  string
	side  Side
	color string

	energy   float64
	rotation float64

	atmosphere *anim.Mirrored
	coronaX    *anim.Mirrored
	coronaY    *anim.Mirrored
	corona     *anim.Mirrored

	machine     *fsm.Machine[GlowVariant, glowEvent]
	offset      *anim.Tween
	scale       *anim.Tween
	transitions int
}

// NewGlowSystem starts the star in its home placement
func NewGlowSystem(name string, side Side, color string) *GlowSystem {
	g := &GlowSystem{
		name:       name,
		side:       side,
		color:      color,
		atmosphere: anim.NewMirrored(1, parameter.GlowAtmosphereScale, parameter.GlowAtmospherePeriod, vmath.EaseInOut),
		corona:     anim.NewMirrored(1, parameter.GlowCoronaScale, parameter.GlowCoronaPeriod, vmath.EaseInOut),
		coronaX:    anim.NewMirrored(1, parameter.GlowCoronaScaleX, parameter.GlowCoronaPeriod, vmath.EaseInOut),
		coronaY:    anim.NewMirrored(1, parameter.GlowCoronaScaleY, parameter.GlowCoronaPeriod, vmath.EaseInOut),
		offset:     anim.Hold(0),
		scale:      anim.Hold(1),
	}

	g.machine = fsm.New[GlowVariant, glowEvent](VariantHome).
		On(VariantHome, glowLeaveHome, VariantAway).
		On(VariantAway, glowReturnHome, VariantHome)
	g.machine.Start()

	// Hooks attach after Start so the initial placement is not animated
	g.machine.
		OnEnter(VariantAway, func(GlowVariant) {
			g.transitions++
			g.offset.Retarget(g.awayOffset(), parameter.GlowRouteDuration, vmath.EaseInOut)
			g.scale.Retarget(parameter.GlowAwayScale, parameter.GlowRouteDuration, vmath.EaseInOut)
		}).
		OnEnter(VariantHome, func(GlowVariant) {
			g.transitions++
			g.offset.Retarget(0, parameter.GlowRouteDuration, vmath.EaseInOut)
			g.scale.Retarget(1, parameter.GlowRouteDuration, vmath.EaseInOut)
		})
	return g
}

// awayOffset slides toward the screen center
func (g *GlowSystem) awayOffset() float64 {
	if g.side == SideRight {
		return -parameter.GlowAwayOffsetVW
	}
	return parameter.GlowAwayOffsetVW
}

func (g *GlowSystem) Name() string { return g.name }

func (g *GlowSystem) OnTick(energy float64, dt time.Duration) {
	g.energy = energy
	g.rotation += energy * parameter.GlowRotationFactor * dt.Seconds()

	g.atmosphere.Step(dt)
	g.corona.Step(dt)
	g.coronaX.Step(dt)
	g.coronaY.Step(dt)

	g.machine.Update(dt)
	g.offset.Step(dt)
	g.scale.Step(dt)
}

// SetRoute switches variant, repeated non-home routes while away are no-ops
func (g *GlowSystem) SetRoute(path string) {
	if route.IsHome(path) {
		g.machine.Fire(glowReturnHome)
		return
	}
	g.machine.Fire(glowLeaveHome)
}

func (g *GlowSystem) Variant() GlowVariant { return g.machine.State() }

// RouteTransitions counts variant changes since construction
func (g *GlowSystem) RouteTransitions() int { return g.transitions }

func (g *GlowSystem) Frame() GlowFrame {
	f := GlowFrame{
		Side:       g.side,
		Color:      g.color,
		Variant:    g.machine.State(),
		OffsetVW:   g.offset.Value(),
		RouteScale: g.scale.Value(),
		Rotation:   g.rotation,
		ScaleBoost: ScaleBoost(g.energy),
	}
	f.Layers[0] = GlowLayer{
		Name:    "atmosphere",
		Scale:   g.atmosphere.Value(),
		ScaleX:  1,
		ScaleY:  1,
		Opacity: vmath.Clamp01(parameter.GlowAtmosphereOpacity + OpacityBoost(g.energy, parameter.GlowAtmosphereBoost)),
	}
	f.Layers[1] = GlowLayer{
		Name:    "corona",
		Scale:   g.corona.Value(),
		ScaleX:  g.coronaX.Value(),
		ScaleY:  g.coronaY.Value(),
		Opacity: vmath.Clamp01(parameter.GlowCoronaOpacity + OpacityBoost(g.energy, parameter.GlowCoronaBoost)),
	}
	f.Layers[2] = GlowLayer{
		Name:    "core",
		Scale:   1,
		ScaleX:  1,
		ScaleY:  1,
		Opacity: vmath.Clamp01(parameter.GlowCoreOpacity + OpacityBoost(g.energy, parameter.GlowCoreBoost)),
	}
	return f
}

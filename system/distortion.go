package system

import (
	"time"

	"github.com/ojrac/opensimplex-go"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/status"
	"github.com/jagjit/cosmos-folio/vmath"
)

// DistortionScale maps energy onto displacement strength, clamped at saturation
func DistortionScale(energy float64) float64 {
	return vmath.MapRange(energy, 0, parameter.DistortionEnergyMax, 0, parameter.DistortionScaleMax)
}

// DistortionSeed drifts the noise pattern with energy
func DistortionSeed(energy float64) float64 {
	return energy * parameter.DistortionSeedFactor
}

// DistortionFrame is the render-boundary output of the background distortion
type DistortionFrame struct {
	Scale float64
	Seed  float64
}

// DistortionSystem publishes the turbulence filter parameters and samples the noise field
type DistortionSystem struct {
	name      string
	noise     opensimplex.Noise
	frequency float64
	scale     float64
	seed      float64

	statScale *status.AtomicFloat
}

// NewDistortionSystem builds the noise field from a fixed seed so layouts are reproducible
func NewDistortionSystem(name string, noiseSeed int64, reg *status.Registry) *DistortionSystem {
	return &DistortionSystem{
		name:      name,
		noise:     opensimplex.NewNormalized(noiseSeed),
		frequency: parameter.DistortionNoiseFrequency,
		statScale: reg.Floats.Get(status.KeyDistortion),
	}
}

func (d *DistortionSystem) Name() string { return d.name }

func (d *DistortionSystem) OnTick(energy float64, _ time.Duration) {
	d.scale = DistortionScale(energy)
	d.seed = DistortionSeed(energy)
	d.statScale.Set(d.scale)
}

func (d *DistortionSystem) Frame() DistortionFrame {
	return DistortionFrame{Scale: d.scale, Seed: d.seed}
}

// Displace samples the field at (x, y) in pixels, at rest it is exactly zero
func (d *DistortionSystem) Displace(x, y float64) (dx, dy float64) {
	if d.scale == 0 {
		return 0, 0
	}
	z := d.seed * parameter.DistortionSeedDrift
	fx, fy := x*d.frequency, y*d.frequency
	// Normalized noise is in [0, 1], recentre to [-1, 1]
	nx := d.noise.Eval3(fx, fy, z)*2 - 1
	ny := d.noise.Eval3(fx+31.7, fy+17.3, z)*2 - 1
	return nx * d.scale, ny * d.scale
}

// DisplaceCells converts a pixel displacement at a terminal cell into whole-cell offsets
func (d *DistortionSystem) DisplaceCells(col, row int) (dc, dr int) {
	dx, dy := d.Displace(float64(col), float64(row)/vmath.TerminalAspect)
	dc = int(dx * parameter.DistortionCellsPerPixel)
	dr = int(dy * parameter.DistortionCellsPerPixel * vmath.TerminalAspect)
	return dc, dr
}

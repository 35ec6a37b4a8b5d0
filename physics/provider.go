package physics

import (
	"fmt"

	"github.com/jagjit/cosmos-folio/parameter"
)

// Params tunes the shared physics
type Params struct {
	Sensitivity  float64
	Friction     float64
	Epsilon      float64
	InitialBoost float64
}

// DefaultParams returns the canonical constants
func DefaultParams() Params {
	return Params{
		Sensitivity:  parameter.Sensitivity,
		Friction:     parameter.Friction,
		Epsilon:      parameter.SnapEpsilon,
		InitialBoost: parameter.InitialBoost,
	}
}

// Validate rejects parameters that would break the energy invariants
func (p Params) Validate() error {
	if p.Sensitivity < 0 {
		return fmt.Errorf("sensitivity must be >= 0, got %v", p.Sensitivity)
	}
	if p.Friction <= 0 || p.Friction >= 1 {
		return fmt.Errorf("friction must be in (0,1), got %v", p.Friction)
	}
	if p.Epsilon < parameter.SnapEpsilonMin || p.Epsilon > parameter.SnapEpsilonMax {
		return fmt.Errorf("snap epsilon must be in [%v,%v], got %v",
			parameter.SnapEpsilonMin, parameter.SnapEpsilonMax, p.Epsilon)
	}
	if p.InitialBoost < 0 {
		return fmt.Errorf("initial boost must be >= 0, got %v", p.InitialBoost)
	}
	return nil
}

// Provider owns the energy signal for the lifetime of one mount
// Consumers obtain a Reader from it; reading outside Mount/Unmount is a wiring bug and panics
type Provider struct {
	params  Params
	signal  *Signal
	source  *VelocitySource
	clock   *DecayClock
	mounted bool
}

// NewProvider validates params, the signal is created by Mount
func NewProvider(params Params) (*Provider, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("physics params: %w", err)
	}
	return &Provider{params: params}, nil
}

// Mount creates a fresh signal seeded with the initial boost
func (p *Provider) Mount() {
	if p.mounted {
		panic("physics: provider mounted twice")
	}
	p.signal = newSignal(p.params.InitialBoost)
	p.source = &VelocitySource{signal: p.signal, sensitivity: p.params.Sensitivity}
	p.clock = &DecayClock{signal: p.signal, friction: p.params.Friction, epsilon: p.params.Epsilon}
	p.mounted = true
}

// Unmount closes the signal, dropping subscribers; readers obtained earlier start panicking
func (p *Provider) Unmount() {
	if !p.mounted {
		return
	}
	p.signal.close()
	p.mounted = false
}

func (p *Provider) Mounted() bool { return p.mounted }

// MustReader returns the consumer view of energy
func (p *Provider) MustReader() Reader {
	p.mustBeMounted("MustReader")
	return p.signal
}

// MustSource returns the input-side writer
func (p *Provider) MustSource() *VelocitySource {
	p.mustBeMounted("MustSource")
	return p.source
}

// MustClock returns the per-frame decay writer
func (p *Provider) MustClock() *DecayClock {
	p.mustBeMounted("MustClock")
	return p.clock
}

func (p *Provider) Params() Params { return p.params }

func (p *Provider) mustBeMounted(caller string) {
	if !p.mounted {
		panic(fmt.Sprintf("physics: %s called outside a mounted provider", caller))
	}
}

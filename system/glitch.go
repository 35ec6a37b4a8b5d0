package system

import (
	"sync/atomic"
	"time"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/physics"
	"github.com/jagjit/cosmos-folio/status"
	"github.com/jagjit/cosmos-folio/vmath"
)

// Timers schedules callbacks against frame time
type Timers interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Slot is one displayed character of the glitch text
type Slot struct {
	Char      rune
	Glitching bool
}

// GlitchConfig configures a GlitchSystem, zero Alphabet and Rand fall back to defaults
type GlitchConfig struct {
	Text     string
	Alphabet string
	Rand     vmath.Rand
}

// ChaosLevel maps energy onto the fraction of slots that glitch each frame
func ChaosLevel(energy float64) float64 {
	return min(energy/parameter.GlitchChaosDivisor, parameter.GlitchChaosCap)
}

// GlitchSystem substitutes characters of a fixed text in proportion to energy
// Above the activation threshold every slot is redrawn each frame; below it a
// single slot flickers after each idle interval
type GlitchSystem struct {
	name     string
	original []rune
	slots    []Slot
	alphabet []rune
	rng      vmath.Rand
	timers   Timers
	energy   physics.Reader

	sincePassive time.Duration
	onPassive    func(index int)

	statChaos     *status.AtomicFloat
	statGlitching *atomic.Int64
}

// NewGlitchSystem wires the driver to frame timers and the energy signal used for delayed reverts
func NewGlitchSystem(name string, cfg GlitchConfig, timers Timers, energy physics.Reader, reg *status.Registry) *GlitchSystem {
	alphabet := cfg.Alphabet
	if alphabet == "" {
		alphabet = parameter.GlitchAlphabet
	}
	rng := cfg.Rand
	if rng == nil {
		rng = vmath.NewTimeSeededRand()
	}

	original := []rune(cfg.Text)
	slots := make([]Slot, len(original))
	for i, r := range original {
		slots[i] = Slot{Char: r}
	}

	return &GlitchSystem{
		name:          name,
		original:      original,
		slots:         slots,
		alphabet:      []rune(alphabet),
		rng:           rng,
		timers:        timers,
		energy:        energy,
		statChaos:     reg.Floats.Get(status.KeyChaos),
		statGlitching: reg.Ints.Get(status.KeyGlitching),
	}
}

// OnPassive registers a hook fired for each idle flicker
func (g *GlitchSystem) OnPassive(fn func(index int)) {
	g.onPassive = fn
}

func (g *GlitchSystem) Name() string { return g.name }

func (g *GlitchSystem) OnTick(energy float64, dt time.Duration) {
	chaos := ChaosLevel(energy)
	g.statChaos.Set(chaos)

	if chaos > parameter.GlitchActivationThreshold {
		g.tickActive(chaos)
	} else {
		g.tickPassive(energy, dt)
	}
	g.statGlitching.Store(int64(g.GlitchingCount()))
}

func (g *GlitchSystem) tickActive(chaos float64) {
	// Idle timer restarts once activity ends
	g.sincePassive = 0
	for i := range g.slots {
		if g.rng.Float64() < chaos {
			g.slots[i] = Slot{Char: g.randomRune(), Glitching: true}
		} else {
			g.slots[i] = Slot{Char: g.original[i]}
		}
	}
}

func (g *GlitchSystem) tickPassive(energy float64, dt time.Duration) {
	g.sincePassive += dt

	if g.sincePassive > parameter.GlitchPassiveInterval {
		g.sincePassive = 0
		if len(g.slots) == 0 {
			return
		}
		i := g.rng.Intn(len(g.slots))
		g.slots[i] = Slot{Char: g.randomRune(), Glitching: true}
		g.timers.After(parameter.GlitchRevertDelay, func() { g.revert(i) })
		if g.onPassive != nil {
			g.onPassive(i)
		}
		return
	}

	// Slots left over from the last active frame are cleared once energy settles
	if energy == 0 && g.sincePassive > parameter.GlitchCleanupAfter && g.GlitchingCount() > 0 {
		g.restoreAll()
	}
}

// revert runs from a frame timer; if scrolling resumed the active mode owns the slot
func (g *GlitchSystem) revert(i int) {
	if ChaosLevel(g.energy.Get()) > parameter.GlitchActivationThreshold {
		return
	}
	if i < len(g.slots) {
		g.slots[i] = Slot{Char: g.original[i]}
	}
}

func (g *GlitchSystem) restoreAll() {
	for i := range g.slots {
		g.slots[i] = Slot{Char: g.original[i]}
	}
}

func (g *GlitchSystem) randomRune() rune {
	if len(g.alphabet) == 0 {
		return ' '
	}
	return g.alphabet[g.rng.Intn(len(g.alphabet))]
}

// Slots returns a copy of the current display
func (g *GlitchSystem) Slots() []Slot {
	out := make([]Slot, len(g.slots))
	copy(out, g.slots)
	return out
}

func (g *GlitchSystem) GlitchingCount() int {
	n := 0
	for _, s := range g.slots {
		if s.Glitching {
			n++
		}
	}
	return n
}

// String renders the current display text
func (g *GlitchSystem) String() string {
	rs := make([]rune, len(g.slots))
	for i, s := range g.slots {
		rs[i] = s.Char
	}
	return string(rs)
}

// Original returns the undistorted text
func (g *GlitchSystem) Original() string { return string(g.original) }

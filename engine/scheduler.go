package engine

import (
	"sync/atomic"
	"time"

	"github.com/jagjit/cosmos-folio/physics"
	"github.com/jagjit/cosmos-folio/status"
)

// Consumer reads the frame's published energy and advances its own state
// Consumers never write energy back
type Consumer interface {
	Name() string
	OnTick(energy float64, dt time.Duration)
}

// Scheduler is the deterministic per-frame driver
// Each Step: decay + publish, fire due frame timers, then tick consumers in registration order
// All consumers in one Step observe the same energy value
type Scheduler struct {
	clock  *physics.DecayClock
	energy physics.Reader

	consumers []Consumer
	timers    timerQueue

	now      time.Duration
	frames   uint64
	detached bool

	statTicks   *atomic.Int64
	statEnergy  *status.AtomicFloat
	statFrameMs *status.AtomicFloat
	statTimers  *atomic.Int64
}

// NewScheduler binds to a mounted provider, panics if it is not mounted
func NewScheduler(provider *physics.Provider, reg *status.Registry) *Scheduler {
	return &Scheduler{
		clock:       provider.MustClock(),
		energy:      provider.MustReader(),
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statEnergy:  reg.Floats.Get(status.KeyEnergy),
		statFrameMs: reg.Floats.Get(status.KeyFrameMs),
		statTimers:  reg.Ints.Get(status.KeyTimers),
	}
}

// Add appends a consumer, order of Add is tick order
func (s *Scheduler) Add(c Consumer) {
	if s.detached {
		return
	}
	s.consumers = append(s.consumers, c)
}

// After runs fn on the first Step whose frame time reaches now+d, before consumers tick
// Fire-and-forget: the callback must re-check any state it depends on
func (s *Scheduler) After(d time.Duration, fn func()) (cancel func()) {
	if s.detached {
		return func() {}
	}
	t := s.timers.add(s.now+d, fn)
	return func() { t.cancelled = true }
}

// Step advances one frame by dt and returns the energy every consumer saw
func (s *Scheduler) Step(dt time.Duration) float64 {
	if s.detached {
		return 0
	}
	if dt < 0 {
		dt = 0
	}
	s.now += dt
	s.frames++

	energy := s.clock.Tick()

	for _, t := range s.timers.popDue(s.now) {
		t.fn()
		if s.detached {
			return energy
		}
	}

	for _, c := range s.consumers {
		c.OnTick(energy, dt)
	}

	s.statTicks.Store(int64(s.frames))
	s.statEnergy.Set(energy)
	s.statFrameMs.Set(float64(dt) / float64(time.Millisecond))
	s.statTimers.Store(int64(s.timers.len()))
	return energy
}

// Energy is the read-only signal consumers may hold for out-of-frame checks
func (s *Scheduler) Energy() physics.Reader { return s.energy }

// Now is the accumulated frame time since the scheduler was created
func (s *Scheduler) Now() time.Duration { return s.now }

func (s *Scheduler) Frames() uint64 { return s.frames }

// PendingTimers reports live, not yet fired timers
func (s *Scheduler) PendingTimers() int { return s.timers.len() }

// Consumers returns consumer names in tick order
func (s *Scheduler) Consumers() []string {
	names := make([]string, len(s.consumers))
	for i, c := range s.consumers {
		names[i] = c.Name()
	}
	return names
}

// Detach drops consumers and timers, subsequent Steps are no-ops
func (s *Scheduler) Detach() {
	s.detached = true
	s.consumers = nil
	s.timers.clear()
}

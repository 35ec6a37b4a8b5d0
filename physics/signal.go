// Package physics owns the shared scroll energy: a single observable scalar
// written by VelocitySource and DecayClock and read by every visual consumer.
package physics

// Reader is the read-only view of the energy signal handed to consumers
type Reader interface {
	// Get returns the last published energy, panics once the owning provider unmounted
	Get() float64

	// Subscribe registers fn for every published change, returns the unsubscribe func
	Subscribe(fn func(energy float64)) (unsubscribe func())
}

type subscription struct {
	id int
	fn func(float64)
}

// Signal is the energy cell
// Mutation is unexported so only this package's writers can publish
type Signal struct {
	value  float64
	subs   []subscription
	nextID int
	closed bool
}

func newSignal(initial float64) *Signal {
	return &Signal{value: initial}
}

func (s *Signal) Get() float64 {
	if s.closed {
		panic("physics: energy read after provider unmount")
	}
	return s.value
}

func (s *Signal) Subscribe(fn func(energy float64)) func() {
	if s.closed {
		panic("physics: subscribe after provider unmount")
	}
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// set stores v and notifies subscribers in subscription order when it changed
func (s *Signal) set(v float64) {
	if s.closed || v == s.value {
		return
	}
	s.value = v

	// Snapshot so a subscriber may unsubscribe during notification
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

func (s *Signal) close() {
	s.closed = true
	s.subs = nil
}

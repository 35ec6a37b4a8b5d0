// Package fsm is a flat finite state machine with an explicit transition table.
// Event transitions fire on Fire; tick transitions (timeouts and guards) are
// evaluated on Update.
package fsm

import "time"

// Transition is one row of the table
type Transition[S comparable, E comparable] struct {
	Event  E
	Target S
}

type tickTransition[S comparable] struct {
	after  time.Duration // 0 with guard set = evaluate guard only
	guard  func() bool
	target S
}

// Machine is not safe for concurrent use; it lives on the frame loop
type Machine[S comparable, E comparable] struct {
	current     S
	timeInState time.Duration
	started     bool

	transitions map[S][]Transition[S, E]
	ticks       map[S][]tickTransition[S]
	onEnter     map[S][]func(from S)
	onExit      map[S][]func(to S)
	onUpdate    map[S][]func(dt time.Duration)
}

// New creates a machine resting in initial, OnEnter for initial runs at Start
func New[S comparable, E comparable](initial S) *Machine[S, E] {
	m := &Machine[S, E]{
		current:     initial,
		transitions: make(map[S][]Transition[S, E]),
		ticks:       make(map[S][]tickTransition[S]),
		onEnter:     make(map[S][]func(S)),
		onExit:      make(map[S][]func(S)),
		onUpdate:    make(map[S][]func(time.Duration)),
	}
	return m
}

// On adds an event transition, the first row matching an event wins
func (m *Machine[S, E]) On(from S, event E, to S) *Machine[S, E] {
	m.transitions[from] = append(m.transitions[from], Transition[S, E]{Event: event, Target: to})
	return m
}

// After transitions from -> to once time in state reaches d
func (m *Machine[S, E]) After(from S, d time.Duration, to S) *Machine[S, E] {
	m.ticks[from] = append(m.ticks[from], tickTransition[S]{after: d, target: to})
	return m
}

// When transitions from -> to on the first Update where guard holds
func (m *Machine[S, E]) When(from S, guard func() bool, to S) *Machine[S, E] {
	m.ticks[from] = append(m.ticks[from], tickTransition[S]{guard: guard, target: to})
	return m
}

func (m *Machine[S, E]) OnEnter(s S, fn func(from S)) *Machine[S, E] {
	m.onEnter[s] = append(m.onEnter[s], fn)
	return m
}

func (m *Machine[S, E]) OnExit(s S, fn func(to S)) *Machine[S, E] {
	m.onExit[s] = append(m.onExit[s], fn)
	return m
}

func (m *Machine[S, E]) OnUpdate(s S, fn func(dt time.Duration)) *Machine[S, E] {
	m.onUpdate[s] = append(m.onUpdate[s], fn)
	return m
}

// Start runs OnEnter of the initial state, calling it twice is a wiring bug
func (m *Machine[S, E]) Start() {
	if m.started {
		panic("fsm: Start called twice")
	}
	m.started = true
	for _, fn := range m.onEnter[m.current] {
		fn(m.current)
	}
}

func (m *Machine[S, E]) State() S                   { return m.current }
func (m *Machine[S, E]) TimeInState() time.Duration { return m.timeInState }
func (m *Machine[S, E]) Is(s S) bool                { return m.current == s }

// Can reports whether event would transition from the current state
func (m *Machine[S, E]) Can(event E) bool {
	_, ok := m.match(event)
	return ok
}

// Fire applies the first matching row for event, returns false when nothing matched
func (m *Machine[S, E]) Fire(event E) bool {
	m.mustStart()
	target, ok := m.match(event)
	if !ok {
		return false
	}
	m.transition(target)
	return true
}

// Update advances time in state, runs OnUpdate, then at most one tick transition
func (m *Machine[S, E]) Update(dt time.Duration) {
	m.mustStart()
	m.timeInState += dt

	for _, fn := range m.onUpdate[m.current] {
		fn(dt)
	}

	for _, tt := range m.ticks[m.current] {
		if tt.guard != nil {
			if !tt.guard() {
				continue
			}
		} else if m.timeInState < tt.after {
			continue
		}
		m.transition(tt.target)
		return
	}
}

func (m *Machine[S, E]) match(event E) (S, bool) {
	for _, t := range m.transitions[m.current] {
		if t.Event == event {
			return t.Target, true
		}
	}
	var zero S
	return zero, false
}

// transition is a no-op when target is the current state
func (m *Machine[S, E]) transition(target S) {
	if target == m.current {
		return
	}
	from := m.current
	for _, fn := range m.onExit[from] {
		fn(target)
	}
	m.current = target
	m.timeInState = 0
	for _, fn := range m.onEnter[target] {
		fn(from)
	}
}

func (m *Machine[S, E]) mustStart() {
	if !m.started {
		panic("fsm: machine used before Start")
	}
}

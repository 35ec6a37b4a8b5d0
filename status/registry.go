// Package status holds lock-free metrics shared between the frame loop and
// side goroutines (audio callback, HUD). Writers cache the pointer once and
// store directly; readers never touch frame-loop state.
package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyEnergy      = "physics.energy"
	KeyTicks       = "engine.ticks"
	KeyFrameMs     = "engine.frame_ms"
	KeyTimers      = "engine.timers"
	KeyChaos       = "glitch.chaos"
	KeyGlitching   = "glitch.slots"
	KeyDistortion  = "distortion.scale"
	KeyRoute       = "route.current"
	KeyPhase       = "transition.phase"
	KeyAudioActive = "audio.active"
)

// AtomicFloat stores a float64 as its bit pattern, zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }

// AtomicString holds an immutable string snapshot
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(v string) { s.ptr.Store(&v) }

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// MetricMap lazily creates one *T per key
// Registration takes the mutex; cached pointers are used lock-free afterwards
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits metrics in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	sort.Strings(keys)

	for _, k := range keys {
		m.mu.RLock()
		ptr := m.items[k]
		m.mu.RUnlock()
		fn(k, ptr)
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Registry is the metrics facade handed to every subsystem
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Entry is one formatted-ready metric
type Entry struct {
	Key   string
	Kind  string // "bool", "int", "float", "string"
	Bool  bool
	Int   int64
	Float float64
	Text  string
}

// Snapshot collects every metric sorted by key
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.Bools.Count()+r.Ints.Count()+r.Floats.Count()+r.Strings.Count())
	r.Bools.Range(func(k string, p *atomic.Bool) {
		out = append(out, Entry{Key: k, Kind: "bool", Bool: p.Load()})
	})
	r.Ints.Range(func(k string, p *atomic.Int64) {
		out = append(out, Entry{Key: k, Kind: "int", Int: p.Load()})
	})
	r.Floats.Range(func(k string, p *AtomicFloat) {
		out = append(out, Entry{Key: k, Kind: "float", Float: p.Get()})
	})
	r.Strings.Range(func(k string, p *AtomicString) {
		out = append(out, Entry{Key: k, Kind: "string", Text: p.Load()})
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

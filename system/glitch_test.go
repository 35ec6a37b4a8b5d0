package system

import (
	"strings"
	"testing"
	"time"

	"github.com/jagjit/cosmos-folio/engine"
	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/physics"
	"github.com/jagjit/cosmos-folio/status"
	"github.com/jagjit/cosmos-folio/vmath"
)

// manualTimers captures scheduled callbacks so tests decide when they fire
type manualTimers struct {
	pending []func()
	delays  []time.Duration
}

func (m *manualTimers) After(d time.Duration, fn func()) func() {
	m.pending = append(m.pending, fn)
	m.delays = append(m.delays, d)
	return func() {}
}

// fixedEnergy is a Reader whose value the test sets directly
type fixedEnergy struct {
	v float64
}

func (f *fixedEnergy) Get() float64                            { return f.v }
func (f *fixedEnergy) Subscribe(func(float64)) (cancel func()) { return func() {} }

func newTestGlitch(text string) (*GlitchSystem, *manualTimers, *fixedEnergy) {
	timers := &manualTimers{}
	energy := &fixedEnergy{}
	g := NewGlitchSystem("hero", GlitchConfig{Text: text, Rand: vmath.NewFastRand(42)}, timers, energy, status.NewRegistry())
	return g, timers, energy
}

func TestChaosLevel(t *testing.T) {
	tests := []struct {
		energy float64
		want   float64
	}{
		{0, 0},
		{20, 0.1},
		{50, 0.25},
		{100, 0.5},
		{1000, 0.5},
		{10000, 0.5},
	}
	for _, tt := range tests {
		if got := ChaosLevel(tt.energy); got != tt.want {
			t.Errorf("ChaosLevel(%v): expected %v, got %v", tt.energy, tt.want, got)
		}
	}
}

func TestGlitchActiveModeUsesAlphabet(t *testing.T) {
	text := "Jagjit Singh builds things"
	g, _, _ := newTestGlitch(text)

	g.OnTick(150, 16*time.Millisecond)

	slots := g.Slots()
	if len(slots) != len([]rune(text)) {
		t.Fatalf("Expected %d slots, got %d", len([]rune(text)), len(slots))
	}
	if g.GlitchingCount() == 0 {
		t.Fatal("Expected glitching slots at chaos 0.5")
	}
	orig := []rune(text)
	for i, s := range slots {
		if s.Glitching {
			if !strings.ContainsRune(parameter.GlitchAlphabet, s.Char) {
				t.Errorf("Slot %d: %q not in alphabet", i, s.Char)
			}
		} else if s.Char != orig[i] {
			t.Errorf("Slot %d: expected original %q, got %q", i, orig[i], s.Char)
		}
	}

	// Same energy next frame redraws every slot
	g.OnTick(150, 16*time.Millisecond)
	if len(g.String()) == 0 {
		t.Error("Expected display text")
	}
}

func TestGlitchThresholdIsPassive(t *testing.T) {
	g, timers, _ := newTestGlitch("threshold")
	g.OnTick(20, 16*time.Millisecond)
	if n := g.GlitchingCount(); n != 0 {
		t.Errorf("Expected no glitch at chaos exactly 0.1, got %d", n)
	}
	if len(timers.pending) != 0 {
		t.Errorf("Expected no scheduled reverts, got %d", len(timers.pending))
	}
}

func TestGlitchPassiveFlicker(t *testing.T) {
	g, timers, _ := newTestGlitch("idle text")
	var flickers []int
	g.OnPassive(func(i int) { flickers = append(flickers, i) })

	g.OnTick(0, parameter.GlitchPassiveInterval)
	if len(flickers) != 0 {
		t.Fatal("Expected no flicker at exactly the interval")
	}
	g.OnTick(0, time.Millisecond)
	if len(flickers) != 1 {
		t.Fatalf("Expected one flicker, got %d", len(flickers))
	}
	if g.GlitchingCount() != 1 {
		t.Errorf("Expected one glitching slot, got %d", g.GlitchingCount())
	}
	if len(timers.delays) != 1 || timers.delays[0] != parameter.GlitchRevertDelay {
		t.Fatalf("Expected one revert after %v, got %v", parameter.GlitchRevertDelay, timers.delays)
	}

	timers.pending[0]()
	if g.GlitchingCount() != 0 || g.String() != "idle text" {
		t.Errorf("Expected revert to original, got %q", g.String())
	}
}

func TestGlitchRevertSkippedWhileActive(t *testing.T) {
	g, timers, energy := newTestGlitch("abc")
	g.OnTick(0, parameter.GlitchPassiveInterval+time.Millisecond)
	if len(timers.pending) != 1 {
		t.Fatalf("Expected a scheduled revert, got %d", len(timers.pending))
	}

	energy.v = 100
	timers.pending[0]()
	if g.GlitchingCount() != 1 {
		t.Errorf("Expected revert to defer to active mode, got %d glitching", g.GlitchingCount())
	}

	energy.v = 0
	timers.pending[0]()
	if g.GlitchingCount() != 0 {
		t.Errorf("Expected revert once energy settled, got %d glitching", g.GlitchingCount())
	}
}

func TestGlitchCleanupGuard(t *testing.T) {
	g, _, _ := newTestGlitch("stuck characters here")
	g.OnTick(150, 16*time.Millisecond)
	if g.GlitchingCount() == 0 {
		t.Fatal("Expected glitching slots after active frame")
	}
	stuck := g.GlitchingCount()

	// Energy still above zero keeps slots
	g.OnTick(5, 100*time.Millisecond)
	if g.GlitchingCount() != stuck {
		t.Errorf("Expected %d slots kept while energy > 0, got %d", stuck, g.GlitchingCount())
	}

	// Inside the lower bound of the window nothing happens yet
	g2, _, _ := newTestGlitch("stuck characters here")
	g2.OnTick(150, 16*time.Millisecond)
	g2.OnTick(0, 100*time.Millisecond)
	if g2.GlitchingCount() == 0 {
		t.Error("Expected slots kept before cleanup window")
	}
	g2.OnTick(0, 100*time.Millisecond)
	if g2.GlitchingCount() != 0 {
		t.Errorf("Expected cleanup at rest, got %d glitching", g2.GlitchingCount())
	}
	if g2.String() != "stuck characters here" {
		t.Errorf("Expected original text, got %q", g2.String())
	}
}

func TestGlitchEmptyText(t *testing.T) {
	g, timers, _ := newTestGlitch("")
	called := false
	g.OnPassive(func(int) { called = true })
	g.OnTick(150, 16*time.Millisecond)
	g.OnTick(0, 4*time.Second)
	if called || len(timers.pending) != 0 {
		t.Error("Expected no passive pick for empty text")
	}
	if g.String() != "" {
		t.Errorf("Expected empty display, got %q", g.String())
	}
}

func TestGlitchMultiByteText(t *testing.T) {
	text := "héllo ✦ wörld"
	g, _, _ := newTestGlitch(text)
	if got := len(g.Slots()); got != len([]rune(text)) {
		t.Errorf("Expected %d rune slots, got %d", len([]rune(text)), got)
	}
	g.OnTick(150, 16*time.Millisecond)
	g.OnTick(0, 200*time.Millisecond)
	if g.String() != text {
		t.Errorf("Expected %q restored, got %q", text, g.String())
	}
}

// TestGlitchIdleScenario runs 3.2s of idle frames through the real scheduler
func TestGlitchIdleScenario(t *testing.T) {
	p, err := physics.NewProvider(physics.DefaultParams())
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	p.Mount()
	defer p.Unmount()

	reg := status.NewRegistry()
	s := engine.NewScheduler(p, reg)
	g := NewGlitchSystem("hero", GlitchConfig{Text: "Portfolio", Rand: vmath.NewFastRand(7)}, s, s.Energy(), reg)
	s.Add(g)

	flickers := 0
	g.OnPassive(func(int) { flickers++ })

	for s.Now() < 3200*time.Millisecond {
		s.Step(16 * time.Millisecond)
	}
	if flickers != 1 {
		t.Errorf("Expected exactly one flicker, got %d", flickers)
	}
	if g.GlitchingCount() != 0 {
		t.Errorf("Expected flicker reverted, got %d glitching", g.GlitchingCount())
	}
	if s.PendingTimers() != 0 {
		t.Errorf("Expected no pending timers, got %d", s.PendingTimers())
	}
}

// TestGlitchPassiveRevertWindow pins the revert between 100ms and 150ms after the flicker
func TestGlitchPassiveRevertWindow(t *testing.T) {
	p, err := physics.NewProvider(physics.DefaultParams())
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	p.Mount()
	defer p.Unmount()

	reg := status.NewRegistry()
	s := engine.NewScheduler(p, reg)
	g := NewGlitchSystem("hero", GlitchConfig{Text: "Portfolio", Rand: vmath.NewFastRand(11)}, s, s.Energy(), reg)
	s.Add(g)

	flickerAt := time.Duration(-1)
	g.OnPassive(func(int) { flickerAt = s.Now() })

	for flickerAt < 0 {
		if s.Now() > 4*time.Second {
			t.Fatal("No passive flicker within 4s")
		}
		s.Step(16 * time.Millisecond)
	}
	if g.GlitchingCount() != 1 {
		t.Fatalf("Expected one glitching slot at flicker, got %d", g.GlitchingCount())
	}

	for g.GlitchingCount() != 0 {
		if s.Now()-flickerAt > time.Second {
			t.Fatal("Flicker never reverted")
		}
		s.Step(16 * time.Millisecond)
	}
	revertAfter := s.Now() - flickerAt
	if revertAfter < parameter.GlitchRevertDelay || revertAfter > parameter.GlitchCleanupAfter {
		t.Errorf("Expected revert within [%v, %v] of the flicker, got %v",
			parameter.GlitchRevertDelay, parameter.GlitchCleanupAfter, revertAfter)
	}
}

package audio

import (
	"math"
	"testing"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/status"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(status.NewRegistry())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.StartHum()
	sm.PlayGlitchTick()
	sm.ToggleMute()
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected uninitialized manager")
	}
}

func TestSoundManagerMuteToggle(t *testing.T) {
	sm := NewSoundManager(status.NewRegistry())
	if sm.Muted() {
		t.Fatal("Expected unmuted by default")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("Expected muted after first toggle")
	}
	if sm.ToggleMute() || sm.Muted() {
		t.Error("Expected unmuted after second toggle")
	}
}

// TestSoundManagerInitialization may legitimately fail without an audio device
func TestSoundManagerInitialization(t *testing.T) {
	reg := status.NewRegistry()
	sm := NewSoundManager(reg)

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	if !reg.Bools.Get(status.KeyAudioActive).Load() {
		t.Error("Expected audio active metric")
	}
	sm.StartHum()
	sm.PlayGlitchTick()
	sm.Cleanup()
	if reg.Bools.Get(status.KeyAudioActive).Load() || sm.Initialized() {
		t.Error("Expected audio inactive after cleanup")
	}

	// The device is released on cleanup, so it can be opened again
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected reopen after cleanup, got %v", err)
	}
	if !sm.Initialized() {
		t.Error("Expected initialized after reopen")
	}
	sm.Cleanup()
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected repeated cleanup to leave the device closed")
	}
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func TestHumSilentAtRest(t *testing.T) {
	var energy status.AtomicFloat
	g := NewHumGenerator(sampleRate, &energy)
	buf := make([][2]float64, 4096)
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected endless stream, got n=%d ok=%v", n, ok)
	}
	if p := peak(buf); p != 0 {
		t.Errorf("Expected silence at zero energy, got peak %v", p)
	}
}

func TestHumFollowsEnergy(t *testing.T) {
	var energy status.AtomicFloat
	g := NewHumGenerator(sampleRate, &energy)
	buf := make([][2]float64, int(sampleRate)/2)

	energy.Set(30)
	g.Stream(buf)
	low := peak(buf)

	energy.Set(150)
	g.Stream(buf)
	g.Stream(buf)
	high := peak(buf)

	if low <= 0 || high <= low {
		t.Errorf("Expected hum to swell with energy, got low %v high %v", low, high)
	}
	if math.Abs(g.Level()-1) > 1e-3 {
		t.Errorf("Expected level near 1 at saturation, got %v", g.Level())
	}
}

func TestHumLevel(t *testing.T) {
	if HumLevel(0) != 0 || HumLevel(150) != 1 || HumLevel(900) != 1 || HumLevel(75) != 0.5 {
		t.Error("Unexpected hum level mapping")
	}
}

func TestGlitchTickIsFinite(t *testing.T) {
	s := NewGlitchTick(sampleRate)
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 100; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	want := sampleRate.N(parameter.GlitchTickDuration)
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestNewVolumeSilentAtZero(t *testing.T) {
	v := newVolume(nil, 0)
	if !v.Silent {
		t.Error("Expected silent volume for zero gain")
	}
	if v := newVolume(nil, 0.5); v.Silent || v.Volume != -1 {
		t.Errorf("Expected log2 gain -1, got %v", v.Volume)
	}
}

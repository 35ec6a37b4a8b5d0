// Package audio renders scroll energy as sound: a continuous hum that swells
// with energy and a short tick for each idle glitch flicker.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/status"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and the mixer
// Every method is safe without Initialize so the app runs on machines without audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	hum         *beep.Ctrl
	initialized bool
	muted       atomic.Bool

	energy *status.AtomicFloat
	active *atomic.Bool
}

func NewSoundManager(reg *status.Registry) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		energy: reg.Floats.Get(status.KeyEnergy),
		active: reg.Bools.Get(status.KeyAudioActive),
	}
}

// Initialize opens the speaker and starts the mixer, a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.active.Store(true)
	slog.Info("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.hum != nil {
		speaker.Lock()
		sm.hum.Paused = true
		speaker.Unlock()
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	// Releases the output device, Initialize may open it again
	speaker.Close()
	sm.hum = nil
	sm.initialized = false
	sm.active.Store(false)
}

// StartHum adds the energy hum, already playing is a no-op
func (sm *SoundManager) StartHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.hum != nil {
		return
	}
	sm.hum = &beep.Ctrl{Streamer: NewHumGenerator(sampleRate, sm.energy), Paused: sm.muted.Load()}
	speaker.Lock()
	sm.mixer.Add(sm.hum)
	speaker.Unlock()
}

// PlayGlitchTick queues one click
func (sm *SoundManager) PlayGlitchTick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return
	}
	speaker.Lock()
	sm.mixer.Add(NewGlitchTick(sampleRate))
	speaker.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	if sm.hum != nil {
		speaker.Lock()
		sm.hum.Paused = muted
		speaker.Unlock()
	}
	return muted
}

func (sm *SoundManager) Muted() bool { return sm.muted.Load() }

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/status"
	"github.com/jagjit/cosmos-folio/vmath"
)

// HumGenerator is an endless drone whose pitch and loudness follow scroll energy
// It runs on the speaker goroutine and only reads energy through the atomic metric
type HumGenerator struct {
	sr     beep.SampleRate
	energy *status.AtomicFloat
	phase  float64
	level  float64 // smoothed 0..1 energy level
	smooth float64 // per-sample smoothing coefficient
}

func NewHumGenerator(sr beep.SampleRate, energy *status.AtomicFloat) *HumGenerator {
	// ~50ms time constant avoids zipper noise when energy jumps per frame
	smooth := 1 - math.Exp(-1/(0.05*float64(sr)))
	return &HumGenerator{sr: sr, energy: energy, smooth: smooth}
}

// HumLevel maps energy onto the drone level
func HumLevel(energy float64) float64 {
	return vmath.MapRange(energy, 0, parameter.HumEnergyMax, 0, 1)
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	target := HumLevel(g.energy.Get())
	for i := range samples {
		g.level += (target - g.level) * g.smooth
		freq := parameter.HumBaseFreq + parameter.HumFreqSpread*g.level

		// Fundamental plus a soft fifth
		sample := math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(3*math.Pi*g.phase)
		sample *= parameter.HumMaxVolume * g.level

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error { return nil }

// Level is the current smoothed level
func (g *HumGenerator) Level() float64 { return g.level }

// oscillator generates a finite sine burst
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies an exponential fall-off so clicks do not pop
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-5 * float64(d.position) / float64(max(d.total, 1)))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume becomes Silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewGlitchTick is the short high click played on each idle glitch flicker
func NewGlitchTick(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(parameter.GlitchTickFreq, parameter.GlitchTickDuration, rate)
	return newVolume(newDecay(osc, parameter.GlitchTickDuration, rate), parameter.GlitchTickVolume)
}

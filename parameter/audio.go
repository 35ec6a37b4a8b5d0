package parameter

import "time"

// Audio
const (
	AudioSampleRate = 48000
	AudioBuffer     = 100 * time.Millisecond

	// Hum volume tracks energy up to HumEnergyMax
	HumEnergyMax  = 150.0
	HumBaseFreq   = 55.0
	HumFreqSpread = 110.0
	HumMaxVolume  = 0.12

	// GlitchTick is the short click on each passive flicker
	GlitchTickFreq     = 1760.0
	GlitchTickDuration = 25 * time.Millisecond
	GlitchTickVolume   = 0.08
)

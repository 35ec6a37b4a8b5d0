package parameter

import "time"

// Glitch text
const (
	// GlitchAlphabet supplies substitute characters
	GlitchAlphabet = "0123456789!@#$%^&*()_+-=[]{}|;:,.<>?/"

	// GlitchChaosDivisor maps energy onto chaos level
	GlitchChaosDivisor = 200.0

	// GlitchChaosCap keeps at least half the text legible
	GlitchChaosCap = 0.5

	// GlitchActivationThreshold separates active (scroll-driven) from passive mode
	GlitchActivationThreshold = 0.1

	// GlitchPassiveInterval is the idle time between single-character flickers
	GlitchPassiveInterval = 3000 * time.Millisecond

	// GlitchRevertDelay is how long a passive flicker stays visible
	GlitchRevertDelay = 100 * time.Millisecond

	// GlitchCleanupAfter is the lower bound of the stuck-slot cleanup window
	GlitchCleanupAfter = 150 * time.Millisecond
)

package parameter

// Orbit rings
const (
	// OrbitBoostFactor is degrees/sec of extra spin per unit of energy
	OrbitBoostFactor = 1.0

	// Inner and outer ring defaults (radius in columns, seconds per revolution)
	OrbitInnerRadius   = 14
	OrbitInnerDuration = 40.0
	OrbitOuterRadius   = 24
	OrbitOuterDuration = 60.0
)

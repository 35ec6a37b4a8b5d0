package parameter

import "time"

// Pulsing star
const (
	// GlowEnergyClamp bounds energy before any glow mapping
	GlowEnergyClamp = 150.0

	// GlowScalePerEnergy gives ~1.75x at saturation
	GlowScalePerEnergy = 0.005

	// GlowRotationFactor is degrees/sec of spin per unit energy
	GlowRotationFactor = 2.0

	// Layer baselines and per-layer opacity boost
	GlowAtmosphereOpacity = 0.15
	GlowAtmosphereBoost   = 0.005
	GlowAtmospherePeriod  = 8 * time.Second
	GlowAtmosphereScale   = 1.1

	GlowCoronaOpacity = 0.25
	GlowCoronaBoost   = 0.004
	GlowCoronaPeriod  = 4 * time.Second
	GlowCoronaScale   = 1.15
	GlowCoronaScaleX  = 1.05
	GlowCoronaScaleY  = 0.95

	GlowCoreOpacity = 0.5
	GlowCoreBoost   = 0.003

	// Away-from-home variant: slide toward center and recede
	GlowAwayOffsetVW  = 40.0
	GlowAwayScale     = 0.15
	GlowRouteDuration = 1500 * time.Millisecond
)

package parameter

import "time"

// Page transitions
const (
	// PageFadeDuration is the baseline enter/exit fade for every route
	PageFadeDuration = 500 * time.Millisecond

	// HomeExitDuration and HomeExitScale describe the hero warp-out
	HomeExitDuration = 800 * time.Millisecond
	HomeExitScale    = 15.0

	// Staggered child reveal
	StaggerInitialDelay = 300 * time.Millisecond
	StaggerInterval     = 200 * time.Millisecond
	StaggerOffsetY      = 30.0

	// Child spring, settles when offset and velocity drop under StaggerSettle
	StaggerSpringFrequency = 8.0
	StaggerSpringDamping   = 0.6
	StaggerSettle          = 0.05
	StaggerChildFade       = 400 * time.Millisecond
)

// Background star field (away from home only)
const (
	TwinkleCount       = 100
	TwinkleFieldFade   = 2 * time.Second
	TwinkleLargeChance = 0.2
	TwinkleMinPeriod   = 2 * time.Second
	TwinkleMaxPeriod   = 5 * time.Second
	TwinkleMaxDelay    = 5 * time.Second
	TwinkleMinOpacity  = 0.2
)

// Scroll hint
const (
	HintDismissDelta  = 10.0
	HintEnterDelay    = 2500 * time.Millisecond
	HintEnterDuration = 1 * time.Second
	HintExitDuration  = 500 * time.Millisecond
	HintBobPeriod     = 1500 * time.Millisecond
	HintBobOffset     = 6.0
	HintText          = "/// Scroll to Boost ///"
)

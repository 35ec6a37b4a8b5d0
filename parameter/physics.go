package parameter

// Scroll physics, shared by every consumer
const (
	// Sensitivity converts one raw wheel delta unit into energy
	Sensitivity = 0.1

	// Friction is applied once per frame
	Friction = 0.92

	// SnapEpsilon zeroes energy once decay falls below it
	SnapEpsilon = 0.5

	// SnapEpsilonMin and SnapEpsilonMax bound the configurable snap threshold
	SnapEpsilonMin = 0.1
	SnapEpsilonMax = 0.5

	// InitialBoost is the energy present at mount, 0 disables the intro spin-up
	InitialBoost = 0.0
)

// Input translation
const (
	// WheelDelta is the raw delta reported for one mouse wheel notch
	WheelDelta = 100.0

	// KeyScrollDelta is the raw delta for one scroll key press
	KeyScrollDelta = 60.0

	// PageScrollDelta is the raw delta for PgUp/PgDn
	PageScrollDelta = 240.0
)

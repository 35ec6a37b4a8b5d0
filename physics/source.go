package physics

import (
	"math"

	"github.com/jagjit/cosmos-folio/vmath"
)

// VelocitySource turns raw wheel deltas into energy
type VelocitySource struct {
	signal      *Signal
	sensitivity float64
}

// Accumulate adds |rawDelta| * sensitivity, sign is ignored and there is no upper bound
// Non-finite deltas are dropped so energy stays a valid non-negative number
func (v *VelocitySource) Accumulate(rawDelta float64) {
	if !vmath.Finite(rawDelta) {
		return
	}
	v.signal.set(v.signal.value + math.Abs(rawDelta)*v.sensitivity)
}

// Sensitivity returns the shared energy-per-delta constant
func (v *VelocitySource) Sensitivity() float64 {
	return v.sensitivity
}

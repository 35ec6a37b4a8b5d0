package vmath

// Easing maps normalized time [0,1] to normalized progress
type Easing func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 { return Clamp01(t) }

// CubicBezier returns an easing equivalent to the CSS cubic-bezier(x1, y1, x2, y2) timing function
// Endpoints are fixed at (0,0) and (1,1)
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton-Raphson, falls back to bisection when the slope flattens
		s := t
		for i := 0; i < 8; i++ {
			x := sampleX(s) - t
			if x < 1e-7 && x > -1e-7 {
				return sampleY(s)
			}
			d := slopeX(s)
			if d < 1e-6 && d > -1e-6 {
				break
			}
			s -= x / d
		}

		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < 32; i++ {
			x := sampleX(s)
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return sampleY(s)
	}
}

// Standard curves, same control points as the web animation presets
var (
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

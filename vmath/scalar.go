package vmath

import "math"

// Terminal cells are roughly twice as tall as they are wide
const TerminalAspect = 0.5

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange linearly maps v from [inLo, inHi] onto [outLo, outHi]
// Input is clamped to the source range first, so the result never leaves the target range
// A degenerate source range returns outLo
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	lo, hi := inLo, inHi
	if lo > hi {
		lo, hi = hi, lo
	}
	v = Clamp(v, lo, hi)
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// Mirror folds a monotonically increasing phase into a ping-pong value in [0, 1]
// 0 -> 0, one period -> 1, two periods -> 0
func Mirror(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	cycle := elapsed / period
	whole := math.Floor(cycle)
	frac := cycle - whole
	if int64(whole)%2 == 1 {
		return 1 - frac
	}
	return frac
}

// Wrap360 reduces degrees into [0, 360)
func Wrap360(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

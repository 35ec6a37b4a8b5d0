package render

import (
	"math"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/system"
	"github.com/jagjit/cosmos-folio/vmath"
)

// Pixel-to-cell conversion for sizes authored in pixels
const (
	cellsPerPxX = parameter.DistortionCellsPerPixel
	cellsPerPxY = parameter.DistortionCellsPerPixel * vmath.TerminalAspect
)

// Glow layer radii in pixels before any scaling
var glowRadiusPx = [3]float64{300, 150, 40}

// heroWidth is the share of the screen used by the hero block on the landing page
const heroWidth = 0.75

// edgeX is the column a side-anchored element centers on
func edgeX(side system.Side, width int) float64 {
	if side == system.SideRight {
		return float64(width - 1)
	}
	return 0
}

// polar projects an angle and radius in columns around (cx, cy) with terminal aspect correction
func polar(cx, cy, radius, deg float64) (int, int) {
	rad := vmath.Radians(deg)
	x := cx + radius*math.Cos(rad)
	y := cy + radius*math.Sin(rad)*vmath.TerminalAspect
	return int(math.Round(x)), int(math.Round(y))
}

// pxRows converts a vertical pixel offset into rows
func pxRows(px float64) int {
	return int(math.Round(px * cellsPerPxY))
}

// spread places item i of n around center with the given spacing
func spread(center float64, i, n int, spacing float64) int {
	return int(math.Round(center + (float64(i)-float64(n-1)/2)*spacing))
}

// dustAt is a fixed sparse pattern standing in for the background noise texture
func dustAt(x, y int) bool {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h%53 == 0
}

package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color used by the compositor
type RGB struct {
	R, G, B uint8
}

// clamp converts float to uint8 with rounding
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend mixes src over c by alpha
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Screen lightens c by src scaled with alpha, the additive-light blend used for glows
func Screen(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	if alpha > 1.0 {
		alpha = 1.0
	}
	ch := func(d, s uint8) uint8 {
		df, sf := float64(d)/255, float64(s)/255*alpha
		return clamp((1 - (1-df)*(1-sf)) * 255)
	}
	return RGB{R: ch(c.R, src.R), G: ch(c.G, src.G), B: ch(c.B, src.B)}
}

// Tcell converts to a terminal color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

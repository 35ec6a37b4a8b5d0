package render

// Theme palette
var (
	RgbBackground = RGB{8, 8, 12}
	RgbWhite      = RGB{236, 236, 236}
	RgbGray       = RGB{140, 140, 150}
	RgbDim        = RGB{60, 60, 70}
	RgbOrange     = RGB{255, 106, 19}
	RgbNavText    = RGB{8, 8, 12}

	RgbRing      = RGB{45, 45, 55}
	RgbIconBg    = RGB{20, 20, 26}
	RgbIconHover = RGB{255, 106, 19}
	RgbGlitch    = RGB{120, 220, 255}
	RgbCore      = RGB{255, 255, 255}
	RgbHUD       = RGB{120, 200, 140}
)

// starColors maps a glow color name to its light
var starColors = map[string]RGB{
	"orange": RgbOrange,
	"cyan":   {40, 200, 255},
	"violet": {150, 90, 255},
}

// StarColor resolves a named star color, unknown names fall back to orange
func StarColor(name string) RGB {
	if c, ok := starColors[name]; ok {
		return c
	}
	return RgbOrange
}

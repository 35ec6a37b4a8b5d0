package render

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/jagjit/cosmos-folio/status"
)

const hudKeys = "[j/k] scroll  [1-4] route  [tab] next  [d] hud  [m] mute  [q] quit"

// FormatEntry renders one metric value for the overlay
func FormatEntry(e status.Entry) string {
	switch e.Kind {
	case "bool":
		if e.Bool {
			return "on"
		}
		return "off"
	case "int":
		return humanize.Comma(e.Int)
	case "float":
		return humanize.FormatFloat("#,###.##", e.Float)
	case "string":
		if e.Text == "" {
			return "-"
		}
		return e.Text
	}
	return ""
}

// HUDLines lays out the overlay text, keys padded to a common width
func HUDLines(entries []status.Entry, muted bool) []string {
	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Key))
	}
	lines := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		lines = append(lines, e.Key+strings.Repeat(" ", width-runewidth.StringWidth(e.Key))+"  "+FormatEntry(e))
	}
	if muted {
		lines = append(lines, "audio muted")
	}
	return lines
}

func (r *Renderer) drawHUD(s *Scene) {
	w, h := r.buf.Size()
	lines := HUDLines(s.HUD, s.Muted)
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	for y := 0; y < len(lines) && y < h; y++ {
		for x := 0; x < boxW+2 && x < w; x++ {
			r.buf.SetBg(x, y, RgbBackground, 0.85)
		}
		r.buf.Text(1, y, lines[y], RgbHUD, 1, false)
	}
	r.buf.Text(w/2-runewidth.StringWidth(hudKeys)/2, h-1, hudKeys, RgbDim, 1, false)
}

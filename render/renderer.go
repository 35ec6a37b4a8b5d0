// Package render composites one frame of the scene into a tcell screen.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/route"
	"github.com/jagjit/cosmos-folio/system"
	"github.com/jagjit/cosmos-folio/vmath"
)

// Renderer owns the compositing buffer and the hit map of the last frame
// Draw and HitTest run on the frame loop goroutine only
type Renderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	hits   []hitBox
}

// NewRenderer sizes the buffer to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, buf: NewRenderBuffer(w, h)}
}

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Size(); bw != w || bh != h {
		r.buf.Resize(w, h)
	}
	r.screen.Sync()
}

// Buffer exposes the composited frame
func (r *Renderer) Buffer() *RenderBuffer { return r.buf }

// Draw composites s and flushes it to the screen
func (r *Renderer) Draw(s *Scene) {
	r.buf.Clear()
	r.hits = r.hits[:0]

	r.drawDust(s)
	r.drawTwinkle(s)
	for _, g := range s.Glows {
		r.drawGlow(g)
	}

	if route.IsHome(s.Page.Route) {
		r.drawHome(s)
	} else {
		r.drawPage(s)
	}

	r.drawHint(s)
	if s.HUD != nil {
		r.drawHUD(s)
	}
	r.buf.FlushToScreen(r.screen)
}

// HitTest resolves a pointer cell against the last drawn frame, later boxes win
func (r *Renderer) HitTest(x, y int) Hit {
	for i := len(r.hits) - 1; i >= 0; i-- {
		b := r.hits[i]
		if y == b.y && x >= b.x0 && x <= b.x1 {
			return b.hit
		}
	}
	return Hit{}
}

func (r *Renderer) addHit(x0, x1, y int, hit Hit) {
	r.hits = append(r.hits, hitBox{x0: x0, x1: x1, y: y, hit: hit})
}

func displace(d Displacer, x, y int) (int, int) {
	if d == nil {
		return x, y
	}
	dc, dr := d.DisplaceCells(x, y)
	return x + dc, y + dr
}

func (r *Renderer) drawDust(s *Scene) {
	w, h := r.buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !dustAt(x, y) {
				continue
			}
			dx, dy := displace(s.Distort, x, y)
			r.buf.SetFg(dx, dy, '.', RgbDim, 1, false)
		}
	}
}

func (r *Renderer) drawTwinkle(s *Scene) {
	if s.Twinkle.FieldOpacity <= 0 {
		return
	}
	w, h := r.buf.Size()
	for _, st := range s.Twinkle.Stars {
		x := int(st.X * float64(w))
		y := int(st.Y * float64(h))
		x, y = displace(s.Distort, x, y)
		glyph := '·'
		if st.Large {
			glyph = '+'
		}
		r.buf.SetFg(x, y, glyph, RgbWhite, st.Opacity*s.Twinkle.FieldOpacity, st.Large)
	}
}

func (r *Renderer) drawGlow(g system.GlowFrame) {
	w, h := r.buf.Size()
	cx := edgeX(g.Side, w) + g.OffsetVW*float64(w)/100
	cy := float64(h) / 2
	light := StarColor(g.Color)

	for i, layer := range g.Layers {
		scale := layer.Scale * g.ScaleBoost * g.RouteScale
		rx := glowRadiusPx[i] * cellsPerPxX * scale * layer.ScaleX
		ry := glowRadiusPx[i] * cellsPerPxY * scale * layer.ScaleY
		if rx < 0.5 || ry < 0.5 {
			continue
		}
		col := light
		if i == 2 {
			col = RgbCore
		}
		x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
		y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
		for y := max(y0, 0); y <= min(y1, h-1); y++ {
			for x := max(x0, 0); x <= min(x1, w-1); x++ {
				nx, ny := (float64(x)-cx)/rx, (float64(y)-cy)/ry
				d := math.Sqrt(nx*nx + ny*ny)
				if d >= 1 {
					continue
				}
				falloff := (1 - d) * (1 - d)
				r.buf.ScreenBg(x, y, col, layer.Opacity*falloff)
			}
		}
	}

	// Spin rays make the energy-driven rotation visible
	reach := glowRadiusPx[1] * cellsPerPxX * g.ScaleBoost * g.RouteScale
	for k := 0; k < 4; k++ {
		deg := g.Rotation + float64(k)*90
		for step := 2.0; step < reach; step++ {
			x, y := polar(cx, cy, step, deg)
			r.buf.SetFg(x, y, '·', light, g.Layers[1].Opacity*(1-step/reach), false)
		}
	}
}

func (r *Renderer) drawHome(s *Scene) {
	w, h := r.buf.Size()
	alpha := s.Page.Opacity
	scale := s.Page.Scale

	for ri, ring := range s.Rings {
		r.drawRing(ri, ring, scale, alpha)
	}

	// Hero block jitters with distortion
	cx := float64(w) * heroWidth / 2
	cy := float64(h)/2 - 2
	hx, hy := displace(s.Distort, int(cx), int(cy))
	cx += float64(hx - int(cx))
	cy += float64(hy - int(cy))

	for i, slot := range s.Glitch {
		x := spread(cx, i, len(s.Glitch), scale)
		fg := RgbWhite
		if slot.Glitching {
			fg = RgbGlitch
		}
		r.buf.SetFg(x, int(cy), slot.Char, fg, alpha, true)
	}
	role := []rune(s.Hero.Role)
	for i, ch := range role {
		x := spread(cx, i, len(role), scale)
		r.buf.SetFg(x, int(cy)+2, ch, RgbGray, alpha, false)
	}

	r.drawNav(s, alpha)
	r.drawTooltip(s, scale, alpha)
}

func (r *Renderer) drawRing(ri int, ring system.OrbitFrame, scale, alpha float64) {
	w, h := r.buf.Size()
	cx := edgeX(ring.Side, w)
	cy := float64(h) / 2
	radius := float64(ring.Radius) * scale

	if radius > 0 {
		steps := int(2 * math.Pi * radius)
		for i := 0; i < steps; i++ {
			x, y := polar(cx, cy, radius, float64(i)*360/float64(steps))
			r.buf.SetFg(x, y, '·', RgbRing, alpha, false)
		}
	}

	for _, icon := range ring.Icons {
		x, y := polar(cx, cy, radius, icon.World)
		label := "(" + icon.Icon.Label + ")"
		lw := runewidth.StringWidth(label)
		x0 := x - lw/2
		fg := RgbWhite
		if ring.Hovered == icon.Index {
			fg = RgbIconHover
		}
		for i := 0; i < lw; i++ {
			r.buf.SetBg(x0+i, y, RgbIconBg, alpha)
		}
		r.buf.Text(x0, y, label, fg, alpha, ring.Hovered == icon.Index)
		if x0+lw > 0 && x0 < w && y >= 0 && y < h && alpha > 0 {
			r.addHit(x0, x0+lw-1, y, Hit{Kind: HitIcon, Ring: ri, Index: icon.Index})
		}
	}
}

func (r *Renderer) drawTooltip(s *Scene, scale, alpha float64) {
	w, h := r.buf.Size()
	for _, ring := range s.Rings {
		if ring.Tooltip == "" || ring.Hovered < 0 || ring.Hovered >= len(ring.Icons) {
			continue
		}
		icon := ring.Icons[ring.Hovered]
		x, y := polar(edgeX(ring.Side, w), float64(h)/2, float64(ring.Radius)*scale, icon.World)
		text := " " + ring.Tooltip + " "
		tw := runewidth.StringWidth(text)
		x0 := int(vmath.Clamp(float64(x-tw/2), 0, float64(max(w-tw, 0))))
		for i := 0; i < tw; i++ {
			r.buf.SetBg(x0+i, y-1, RgbIconBg, alpha)
		}
		r.buf.Text(x0, y-1, text, RgbWhite, alpha, false)
		r.buf.SetBg(x0, y-1, RgbOrange, alpha*0.5)
		r.buf.SetBg(x0+tw-1, y-1, RgbOrange, alpha*0.5)
	}
}

func (r *Renderer) drawNav(s *Scene, alpha float64) {
	w, h := r.buf.Size()
	x0 := int(float64(w) * heroWidth)
	for y := 0; y < h; y++ {
		for x := x0; x < w; x++ {
			r.buf.SetBg(x, y, RgbOrange, alpha)
		}
	}

	items := route.Order[1:]
	colCenter := float64(x0+w) / 2
	for i, path := range items {
		label := route.Title(path)
		if i < len(s.Hero.Nav) {
			label = s.Hero.Nav[i]
		}
		label = string(rune('2'+i)) + " " + label
		lw := runewidth.StringWidth(label)
		lx := int(colCenter) - lw/2
		ly := spread(float64(h)/2, i, len(items), 2)
		r.buf.Text(lx, ly, label, RgbNavText, alpha, true)
		if alpha > 0 {
			r.addHit(lx, lx+lw-1, ly, Hit{Kind: HitNav, Route: path})
		}
	}
}

func (r *Renderer) drawPage(s *Scene) {
	w, h := r.buf.Size()
	alpha := s.Page.Opacity
	y := h / 4

	title := s.Content.Title
	r.buf.Text(w/2-runewidth.StringWidth(title)/2, y, title, RgbOrange, alpha, true)
	y += 2

	for i, sec := range s.Content.Sections {
		if i >= len(s.Page.Children) {
			break
		}
		child := s.Page.Children[i]
		if !child.Started {
			continue
		}
		a := alpha * child.Opacity
		row := y + pxRows(child.OffsetY)
		if sec.Heading != "" {
			r.buf.Text(w/2-runewidth.StringWidth(sec.Heading)/2, row, sec.Heading, RgbWhite, a, true)
			row++
		}
		for _, line := range sec.Lines {
			r.buf.Text(w/2-runewidth.StringWidth(line)/2, row, line, RgbGray, a, false)
			row++
		}
		y += len(sec.Lines) + 1
		if sec.Heading != "" {
			y++
		}
	}
}

func (r *Renderer) drawHint(s *Scene) {
	if !s.Hint.Visible {
		return
	}
	w, h := r.buf.Size()
	bob := int(math.Round(s.Hint.OffsetY / parameter.HintBobOffset))
	text := s.Hint.Text
	r.buf.Text(w/2-runewidth.StringWidth(text)/2, h-2-bob, text, RgbGray, s.Hint.Opacity, false)
}

package render

import (
	"github.com/jagjit/cosmos-folio/content"
	"github.com/jagjit/cosmos-folio/status"
	"github.com/jagjit/cosmos-folio/system"
	"github.com/jagjit/cosmos-folio/transition"
)

// Displacer offsets background cells by the current distortion field
type Displacer interface {
	DisplaceCells(col, row int) (dc, dr int)
}

// Scene is everything one frame draws, assembled by the app after the scheduler step
type Scene struct {
	Rings   []system.OrbitFrame
	Glows   []system.GlowFrame
	Twinkle system.TwinkleFrame
	Hint    system.HintFrame
	Glitch  []system.Slot
	Distort Displacer // nil draws undisplaced

	Page    transition.Frame
	Content content.Page
	Hero    content.Hero

	HUD   []status.Entry // nil hides the overlay
	Muted bool
}

// HitKind classifies what sits under the pointer
type HitKind uint8

const (
	HitNone HitKind = iota
	HitIcon
	HitNav
)

// Hit is the result of a pointer lookup against the last drawn frame
type Hit struct {
	Kind  HitKind
	Ring  int
	Index int
	Route string
}

type hitBox struct {
	x0, x1, y int
	hit       Hit
}

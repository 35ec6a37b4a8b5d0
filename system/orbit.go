// Package system holds the per-frame visual consumers of scroll energy.
// Each system owns its state exclusively and only reads the energy value it
// is handed by the scheduler.
package system

import (
	"fmt"
	"time"

	"github.com/jagjit/cosmos-folio/parameter"
)

// Side anchors a ring or star to a screen edge
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Icon is one orbiting badge
type Icon struct {
	ID    string
	Label string // short glyph text drawn on the ring
	Alt   string // tooltip text
}

// OrbitConfig describes one ring
type OrbitConfig struct {
	Radius       int
	BaseDuration float64 // seconds per revolution at rest
	Reverse      bool
	Side         Side
	Icons        []Icon
}

// IconPlacement is an icon's static slot plus its current on-screen angle
type IconPlacement struct {
	Index int
	Icon  Icon
	Angle float64 // static slot angle, degrees
	World float64 // slot angle + ring rotation
}

// OrbitFrame is the render-boundary output of one ring
type OrbitFrame struct {
	Side     Side
	Radius   int
	Rotation float64
	Counter  float64 // counter-rotation that keeps icons upright
	Hovering bool
	Tooltip  string // alt text of the hovered icon, empty when none
	Hovered  int    // hovered index, -1 when none
	Icons    []IconPlacement
}

// IconAngle distributes count icons evenly; callers only invoke it for existing indices
func IconAngle(i, count int) float64 {
	return float64(i) * 360 / float64(count)
}

// OrbitSystem spins a ring at base speed plus an energy boost
// While any icon is hovered the rotation is frozen; energy decay elsewhere continues
type OrbitSystem struct {
	name     string
	cfg      OrbitConfig
	boost    float64
	rotation float64
	hovering bool
	hovered  int
}

// NewOrbitSystem validates the ring configuration
func NewOrbitSystem(name string, cfg OrbitConfig) (*OrbitSystem, error) {
	if cfg.BaseDuration <= 0 {
		return nil, fmt.Errorf("orbit %s: base duration must be > 0, got %v", name, cfg.BaseDuration)
	}
	if cfg.Radius < 0 {
		return nil, fmt.Errorf("orbit %s: radius must be >= 0, got %d", name, cfg.Radius)
	}
	icons := make([]Icon, len(cfg.Icons))
	copy(icons, cfg.Icons)
	cfg.Icons = icons

	return &OrbitSystem{
		name:    name,
		cfg:     cfg,
		boost:   parameter.OrbitBoostFactor,
		hovered: -1,
	}, nil
}

func (s *OrbitSystem) Name() string { return s.name }

func (s *OrbitSystem) OnTick(energy float64, dt time.Duration) {
	if s.hovering {
		return
	}
	speed := 360/s.cfg.BaseDuration + energy*s.boost
	if s.cfg.Reverse {
		speed = -speed
	}
	s.rotation += speed * dt.Seconds()
}

// HoverEnter freezes the ring and selects i's tooltip, out of range indices are ignored
func (s *OrbitSystem) HoverEnter(i int) bool {
	if i < 0 || i >= len(s.cfg.Icons) {
		return false
	}
	s.hovering = true
	s.hovered = i
	return true
}

// HoverLeave resumes rotation from where it stopped
func (s *OrbitSystem) HoverLeave() {
	s.hovering = false
	s.hovered = -1
}

func (s *OrbitSystem) Rotation() float64   { return s.rotation }
func (s *OrbitSystem) Hovering() bool      { return s.hovering }
func (s *OrbitSystem) Config() OrbitConfig { return s.cfg }

// Tooltip returns the single visible tooltip for this ring
func (s *OrbitSystem) Tooltip() (Icon, bool) {
	if s.hovered < 0 {
		return Icon{}, false
	}
	return s.cfg.Icons[s.hovered], true
}

// Frame snapshots the ring for rendering
func (s *OrbitSystem) Frame() OrbitFrame {
	f := OrbitFrame{
		Side:     s.cfg.Side,
		Radius:   s.cfg.Radius,
		Rotation: s.rotation,
		Counter:  -s.rotation,
		Hovering: s.hovering,
		Hovered:  s.hovered,
		Icons:    make([]IconPlacement, len(s.cfg.Icons)),
	}
	if icon, ok := s.Tooltip(); ok {
		f.Tooltip = icon.Alt
	}
	for i, icon := range s.cfg.Icons {
		angle := IconAngle(i, len(s.cfg.Icons))
		f.Icons[i] = IconPlacement{Index: i, Icon: icon, Angle: angle, World: angle + s.rotation}
	}
	return f
}

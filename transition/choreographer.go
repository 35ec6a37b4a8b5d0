// Package transition sequences page exits and entrances around route changes.
package transition

import (
	"fmt"
	"time"

	"github.com/jagjit/cosmos-folio/anim"
	"github.com/jagjit/cosmos-folio/fsm"
	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/route"
	"github.com/jagjit/cosmos-folio/status"
	"github.com/jagjit/cosmos-folio/vmath"
)

// Phase of the page lifecycle
type Phase uint8

const (
	PhaseEntering Phase = iota
	PhaseSteady
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseSteady:
		return "steady"
	case PhaseExiting:
		return "exiting"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

type event uint8

const (
	eventNavigate event = iota
)

// ChildFrame is one staggered section of the visible page
type ChildFrame struct {
	Started bool
	OffsetY float64
	Opacity float64
}

// Frame is the render-boundary output for the page layer
type Frame struct {
	Route    string
	Pending  string
	Phase    Phase
	Opacity  float64
	Scale    float64
	Children []ChildFrame
}

// ChildCounter reports how many staggered sections a route renders
type ChildCounter func(path string) int

type child struct {
	delay   time.Duration
	started bool
	settled bool
	spring  *anim.Spring
	fade    *anim.Tween
}

// Choreographer is an exit-before-enter page transition manager
// At most one page is visible; the incoming page mounts only after the outgoing exit completes
// Current is the mounted page, the router holds the requested route
type Choreographer struct {
	router   *route.Router
	children ChildCounter
	machine  *fsm.Machine[Phase, event]

	current string
	pending string

	opacity *anim.Tween
	scale   *anim.Tween
	kids    []*child
	enterT  time.Duration

	superseded int

	statPhase *status.AtomicString
	statRoute *status.AtomicString
}

// NewChoreographer starts entering the router's current route
func NewChoreographer(router *route.Router, children ChildCounter, reg *status.Registry) *Choreographer {
	if children == nil {
		children = func(string) int { return 0 }
	}
	c := &Choreographer{
		router:    router,
		children:  children,
		current:   router.Current(),
		opacity:   anim.Hold(0),
		scale:     anim.Hold(1),
		statPhase: reg.Strings.Get(status.KeyPhase),
		statRoute: reg.Strings.Get(status.KeyRoute),
	}

	c.machine = fsm.New[Phase, event](PhaseEntering).
		On(PhaseSteady, eventNavigate, PhaseExiting).
		On(PhaseEntering, eventNavigate, PhaseExiting).
		When(PhaseExiting, c.exitDone, PhaseEntering).
		When(PhaseEntering, c.enterDone, PhaseSteady)
	c.machine.Start()

	c.machine.
		OnEnter(PhaseExiting, func(Phase) { c.beginExit() }).
		OnExit(PhaseExiting, func(Phase) { c.mountPending() }).
		OnUpdate(PhaseEntering, c.stepChildren)

	c.beginEnter()
	c.publish()
	return c
}

func (c *Choreographer) Name() string { return "transition" }

// Navigate requests path; while exiting the latest request replaces the pending one
// The router commits at request time so route-driven visuals move with the exit,
// while the page itself waits for the outgoing exit to finish
func (c *Choreographer) Navigate(path string) error {
	if !c.router.Known(path) {
		return fmt.Errorf("navigate: unknown route %q", path)
	}

	if c.machine.Can(eventNavigate) {
		if path == c.current {
			return nil
		}
		c.pending = path
		c.machine.Fire(eventNavigate)
	} else if path != c.pending {
		c.pending = path
		c.superseded++
	}

	// Known was checked above, Commit cannot fail here
	_ = c.router.Commit(path)
	c.publish()
	return nil
}

func (c *Choreographer) OnTick(_ float64, dt time.Duration) {
	c.opacity.Step(dt)
	c.scale.Step(dt)

	before := c.machine.State()
	c.machine.Update(dt)
	if c.machine.State() != before {
		c.publish()
	}
}

func (c *Choreographer) beginExit() {
	if route.IsHome(c.current) {
		c.scale.Retarget(parameter.HomeExitScale, parameter.HomeExitDuration, vmath.EaseIn)
		c.opacity.Retarget(0, parameter.HomeExitDuration, vmath.EaseIn)
		return
	}
	c.opacity.Retarget(0, parameter.PageFadeDuration, vmath.EaseInOut)
}

// mountPending swaps the page once the exit completes
func (c *Choreographer) mountPending() {
	c.current = c.pending
	c.pending = ""
	c.beginEnter()
}

func (c *Choreographer) beginEnter() {
	c.scale = anim.Hold(1)
	c.opacity = anim.NewTween(0, 1, parameter.PageFadeDuration, vmath.EaseInOut)
	c.enterT = 0

	n := c.children(c.current)
	c.kids = make([]*child, n)
	for i := range c.kids {
		c.kids[i] = &child{
			delay:  StaggerDelay(i),
			spring: anim.NewSpring(parameter.StaggerOffsetY, 0, parameter.StaggerSpringFrequency, parameter.StaggerSpringDamping),
			fade:   anim.NewTween(0, 1, parameter.StaggerChildFade, vmath.EaseOut),
		}
	}
}

func (c *Choreographer) stepChildren(dt time.Duration) {
	c.enterT += dt
	for _, k := range c.kids {
		if !k.started {
			if c.enterT < k.delay {
				continue
			}
			k.started = true
			// Only the portion of the frame past the delay counts toward motion
			over := c.enterT - k.delay
			k.spring.Step(over)
			k.fade.Step(over)
		} else if !k.settled {
			k.spring.Step(dt)
			k.fade.Step(dt)
		}
		if !k.settled && k.fade.Done() && k.spring.Settled(parameter.StaggerSettle) {
			k.settled = true
		}
	}
}

// StaggerDelay is when child i starts relative to the entrance
func StaggerDelay(i int) time.Duration {
	return parameter.StaggerInitialDelay + time.Duration(i)*parameter.StaggerInterval
}

func (c *Choreographer) exitDone() bool {
	return c.opacity.Done() && c.scale.Done()
}

func (c *Choreographer) enterDone() bool {
	if !c.opacity.Done() {
		return false
	}
	for _, k := range c.kids {
		if !k.settled {
			return false
		}
	}
	return true
}

func (c *Choreographer) publish() {
	c.statPhase.Store(c.machine.State().String())
	c.statRoute.Store(c.current)
}

func (c *Choreographer) Phase() Phase    { return c.machine.State() }
func (c *Choreographer) Current() string { return c.current }
func (c *Choreographer) Pending() string { return c.pending }
func (c *Choreographer) Superseded() int { return c.superseded }
func (c *Choreographer) Steady() bool    { return c.machine.Is(PhaseSteady) }

func (c *Choreographer) Frame() Frame {
	f := Frame{
		Route:    c.current,
		Pending:  c.pending,
		Phase:    c.machine.State(),
		Opacity:  c.opacity.Value(),
		Scale:    c.scale.Value(),
		Children: make([]ChildFrame, len(c.kids)),
	}
	for i, k := range c.kids {
		if !k.started {
			f.Children[i] = ChildFrame{OffsetY: parameter.StaggerOffsetY}
			continue
		}
		f.Children[i] = ChildFrame{Started: true, OffsetY: k.spring.Value(), Opacity: k.fade.Value()}
	}
	return f
}

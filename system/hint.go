package system

import (
	"math"
	"time"

	"github.com/jagjit/cosmos-folio/anim"
	"github.com/jagjit/cosmos-folio/fsm"
	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/vmath"
)

// HintFrame is the render-boundary output of the scroll hint
type HintFrame struct {
	Visible bool
	Opacity float64
	OffsetY float64
	Text    string
}

type hintState uint8

const (
	hintWaiting hintState = iota
	hintShown
	hintDismissed
)

type hintEvent uint8

const hintDismiss hintEvent = 1

// HintSystem shows a one-shot prompt until the first real scroll
type HintSystem struct {
	name    string
	machine *fsm.Machine[hintState, hintEvent]
	opacity *anim.Tween
	bob     *anim.Pulse
}

func NewHintSystem(name string) *HintSystem {
	h := &HintSystem{
		name:    name,
		opacity: anim.Hold(0),
		bob:     anim.NewPulse(0, parameter.HintBobOffset, parameter.HintBobPeriod, vmath.EaseInOut),
	}
	h.machine = fsm.New[hintState, hintEvent](hintWaiting).
		After(hintWaiting, parameter.HintEnterDelay, hintShown).
		On(hintWaiting, hintDismiss, hintDismissed).
		On(hintShown, hintDismiss, hintDismissed).
		OnEnter(hintShown, func(hintState) {
			h.opacity.Retarget(1, parameter.HintEnterDuration, vmath.EaseOut)
		}).
		OnEnter(hintDismissed, func(hintState) {
			h.opacity.Retarget(0, parameter.HintExitDuration, vmath.EaseOut)
		})
	h.machine.Start()
	return h
}

func (h *HintSystem) Name() string { return h.name }

// Observe sees every raw scroll delta before it reaches the physics source
func (h *HintSystem) Observe(rawDelta float64) {
	if math.Abs(rawDelta) <= parameter.HintDismissDelta {
		return
	}
	h.machine.Fire(hintDismiss)
}

func (h *HintSystem) OnTick(_ float64, dt time.Duration) {
	h.machine.Update(dt)
	h.opacity.Step(dt)
	h.bob.Step(dt)
}

func (h *HintSystem) Dismissed() bool { return h.machine.Is(hintDismissed) }

func (h *HintSystem) Frame() HintFrame {
	op := h.opacity.Value()
	return HintFrame{
		Visible: op > 0,
		Opacity: op,
		OffsetY: h.bob.Value(),
		Text:    parameter.HintText,
	}
}

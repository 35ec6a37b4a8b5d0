package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jagjit/cosmos-folio/parameter"
)

// Machine parses tcell events into Intents
// Mouse motion is deduplicated so holding still produces no hover traffic
type Machine struct {
	keyTable *KeyTable

	lastX, lastY int
	hasPointer   bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process returns nil for events with no meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		entry, ok := m.keyTable.Runes[ev.Rune()]
		if !ok {
			return nil
		}
		return entry.intent()
	}
	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return entry.intent()
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return &Intent{Type: IntentScroll, Delta: -parameter.WheelDelta, X: x, Y: y}
	case buttons&tcell.WheelDown != 0:
		return &Intent{Type: IntentScroll, Delta: parameter.WheelDelta, X: x, Y: y}
	case buttons&tcell.Button1 != 0:
		return &Intent{Type: IntentClick, X: x, Y: y}
	case buttons == tcell.ButtonNone:
		if m.hasPointer && x == m.lastX && y == m.lastY {
			return nil
		}
		m.lastX, m.lastY, m.hasPointer = x, y, true
		return &Intent{Type: IntentHover, X: x, Y: y}
	}
	return nil
}

func (e KeyEntry) intent() *Intent {
	return &Intent{Type: e.IntentType, Delta: e.Delta, Route: e.Route}
}

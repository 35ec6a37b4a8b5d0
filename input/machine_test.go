package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/route"
)

func TestKeyIntents(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		typ   IntentType
		delta float64
		route string
	}{
		{"j scrolls down", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), IntentScroll, parameter.KeyScrollDelta, ""},
		{"k scrolls up", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), IntentScroll, -parameter.KeyScrollDelta, ""},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), IntentScroll, parameter.KeyScrollDelta, ""},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), IntentScroll, parameter.PageScrollDelta, ""},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), IntentScroll, -parameter.PageScrollDelta, ""},
		{"1 is home", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), IntentNavigate, 0, route.Home},
		{"3 is experience", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), IntentNavigate, 0, route.Experience},
		{"4 is projects", tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), IntentNavigate, 0, route.Projects},
		{"h is home", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentNavigate, 0, route.Home},
		{"tab cycles", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), IntentNextRoute, 0, ""},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit, 0, ""},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit, 0, ""},
		{"ctrl+c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit, 0, ""},
		{"d toggles hud", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), IntentToggleHUD, 0, ""},
		{"m toggles mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute, 0, ""},
	}

	m := NewMachine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Process(tt.ev)
			if got == nil {
				t.Fatal("Expected intent, got nil")
			}
			if got.Type != tt.typ || got.Delta != tt.delta || got.Route != tt.route {
				t.Errorf("Expected %v/%v/%q, got %v/%v/%q", tt.typ, tt.delta, tt.route, got.Type, got.Delta, got.Route)
			}
		})
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewMachine()
	if got := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); got != nil {
		t.Errorf("Expected nil for unbound key, got %+v", got)
	}
	// Digits past the route count stay unbound
	if got := m.Process(tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone)); got != nil {
		t.Errorf("Expected nil for digit without a route, got %+v", got)
	}
	if got := m.Process(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); got != nil {
		t.Errorf("Expected nil for unbound special key, got %+v", got)
	}
}

func TestWheelIntents(t *testing.T) {
	m := NewMachine()
	down := m.Process(tcell.NewEventMouse(5, 6, tcell.WheelDown, tcell.ModNone))
	if down == nil || down.Type != IntentScroll || down.Delta != parameter.WheelDelta {
		t.Errorf("Expected wheel down scroll, got %+v", down)
	}
	up := m.Process(tcell.NewEventMouse(5, 6, tcell.WheelUp, tcell.ModNone))
	if up == nil || up.Type != IntentScroll || up.Delta != -parameter.WheelDelta {
		t.Errorf("Expected wheel up scroll, got %+v", up)
	}
}

func TestHoverDeduplicated(t *testing.T) {
	m := NewMachine()
	first := m.Process(tcell.NewEventMouse(10, 3, tcell.ButtonNone, tcell.ModNone))
	if first == nil || first.Type != IntentHover || first.X != 10 || first.Y != 3 {
		t.Fatalf("Expected hover at (10,3), got %+v", first)
	}
	if again := m.Process(tcell.NewEventMouse(10, 3, tcell.ButtonNone, tcell.ModNone)); again != nil {
		t.Errorf("Expected duplicate hover dropped, got %+v", again)
	}
	if moved := m.Process(tcell.NewEventMouse(11, 3, tcell.ButtonNone, tcell.ModNone)); moved == nil {
		t.Error("Expected hover after pointer moved")
	}
}

func TestClickAndResize(t *testing.T) {
	m := NewMachine()
	click := m.Process(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	if click == nil || click.Type != IntentClick || click.X != 2 || click.Y != 1 {
		t.Errorf("Expected click at (2,1), got %+v", click)
	}
	if rs := m.Process(tcell.NewEventResize(80, 24)); rs == nil || rs.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", rs)
	}
}

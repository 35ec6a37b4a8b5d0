// Package input turns terminal events into semantic intents for the frame loop.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // terminal resize
	IntentToggleHUD  // d
	IntentToggleMute // m

	// Physics
	IntentScroll // wheel, j/k, arrows, PgUp/PgDn

	// Navigation
	IntentNavigate  // 1-4, h
	IntentNextRoute // Tab

	// Mouse
	IntentHover // pointer moved with no button held
	IntentClick // left button press
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentToggleHUD:
		return "toggle_hud"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentScroll:
		return "scroll"
	case IntentNavigate:
		return "navigate"
	case IntentNextRoute:
		return "next_route"
	case IntentHover:
		return "hover"
	case IntentClick:
		return "click"
	}
	return "none"
}

// Intent represents a parsed semantic action
// Pure data, carries no engine references
type Intent struct {
	Type  IntentType
	Delta float64 // raw scroll delta, sign follows the wheel direction
	Route string  // navigation target
	X, Y  int     // pointer cell for mouse intents
}

package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/route"
)

// KeyEntry describes what a key produces
type KeyEntry struct {
	IntentType IntentType
	Delta      float64
	Route      string
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, paging)
	SpecialKeys map[tcell.Key]KeyEntry

	// Plain rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyTab:    {IntentType: IntentNextRoute},
			tcell.KeyDown:   {IntentType: IntentScroll, Delta: parameter.KeyScrollDelta},
			tcell.KeyUp:     {IntentType: IntentScroll, Delta: -parameter.KeyScrollDelta},
			tcell.KeyPgDn:   {IntentType: IntentScroll, Delta: parameter.PageScrollDelta},
			tcell.KeyPgUp:   {IntentType: IntentScroll, Delta: -parameter.PageScrollDelta},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'j': {IntentType: IntentScroll, Delta: parameter.KeyScrollDelta},
			'k': {IntentType: IntentScroll, Delta: -parameter.KeyScrollDelta},
			'h': {IntentType: IntentNavigate, Route: route.Home},
			'd': {IntentType: IntentToggleHUD},
			'm': {IntentType: IntentToggleMute},
		},
	}
	for n := 1; n <= 9; n++ {
		path, ok := route.ByIndex(n)
		if !ok {
			break
		}
		kt.Runes[rune('0'+n)] = KeyEntry{IntentType: IntentNavigate, Route: path}
	}
	return kt
}

package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadwood/constants"
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	IntentType IntentType
	Axis       Axis
	Value      float64
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentQuit, AxisNone, 0},
			tcell.KeyCtrlC:  {IntentQuit, AxisNone, 0},
			tcell.KeyUp:     {IntentMove, AxisForward, -1},
			tcell.KeyDown:   {IntentMove, AxisForward, 1},
			tcell.KeyLeft:   {IntentTurn, AxisNone, constants.TurnStep},
			tcell.KeyRight:  {IntentTurn, AxisNone, -constants.TurnStep},
		},

		Runes: map[rune]KeyEntry{
			'w': {IntentMove, AxisForward, -1},
			's': {IntentMove, AxisForward, 1},
			'a': {IntentMove, AxisStrafe, -1},
			'd': {IntentMove, AxisStrafe, 1},
			'q': {IntentTurn, AxisNone, constants.TurnStep},
			'e': {IntentTurn, AxisNone, -constants.TurnStep},
			' ': {IntentSwing, AxisNone, 0},
			'p': {IntentPause, AxisNone, 0},
		},
	}
}

// Lookup resolves a key event to its entry
func (t *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := t.Runes[toLower(ev.Rune())]
		return entry, ok
	}
	entry, ok := t.SpecialKeys[ev.Key()]
	return entry, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, Ctrl+C
	IntentPause  // p
	IntentResize // Terminal resize event

	// Gameplay
	IntentMove  // w/a/s/d, Up/Down
	IntentTurn  // q/e, Left/Right
	IntentSwing // Space
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentResize:
		return "resize"
	case IntentMove:
		return "move"
	case IntentTurn:
		return "turn"
	case IntentSwing:
		return "swing"
	default:
		return "none"
	}
}

// Axis selects which stick axis a move key drives
type Axis uint8

const (
	AxisNone    Axis = iota
	AxisStrafe       // stick x, positive is right
	AxisForward      // stick z, negative is forward
)

// Intent represents a parsed semantic action
type Intent struct {
	Type  IntentType
	Axis  Axis
	Value float64 // axis value for moves, yaw delta for turns
}

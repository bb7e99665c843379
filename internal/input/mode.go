package input

// Mode is the state of the input state machine.
type Mode uint8

const (
	// ModeNormal resolves keystrokes against the key bindings.
	ModeNormal Mode = iota
	// ModeCommand feeds keystrokes to the command palette.
	ModeCommand
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Flow tells the listener whether to keep reading keystrokes.
type Flow uint8

const (
	// FlowContinue keeps the loop running.
	FlowContinue Flow = iota
	// FlowBreak ends the loop.
	FlowBreak
)

// String returns the flow name.
func (f Flow) String() string {
	if f == FlowBreak {
		return "break"
	}
	return "continue"
}

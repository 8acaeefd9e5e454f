package core

// Action represents a semantic simulation action, abstracted from physical key presses.
// This allows simulations to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionPlane              // N - switch to the bounded plane
	ActionFlatTorus          // F - switch to the flat torus
	ActionCurvedTorus        // C - switch to the curved torus
	ActionPause              // P - pause/unpause stepping
	ActionRestart            // R - start a fresh walk
	ActionExport             // E - write the current path to a PNG
	ActionUp                 // Up, K - menu navigation
	ActionDown               // Down, J - menu navigation
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlane:
		return "Plane"
	case ActionFlatTorus:
		return "FlatTorus"
	case ActionCurvedTorus:
		return "CurvedTorus"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionExport:
		return "Export"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Key presses are edge-triggered: an action is either present in a frame or not.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

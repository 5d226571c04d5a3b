package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard, mouse and touch all collapse into the same few actions.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, Up, W, mouse click - the activate event
	ActionTheme             // T - swap the visual theme
	ActionScreenshot        // Ctrl+S - copy the board as text
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionTheme:
		return "Theme"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

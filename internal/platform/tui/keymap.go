package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
)

// WalkKeyMap defines the key bindings of the walk view.
type WalkKeyMap struct {
	Plane      key.Binding
	Flat       key.Binding
	Curved     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Export     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WalkKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Plane, k.Flat, k.Curved, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WalkKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Plane, k.Flat, k.Curved},
		{k.Pause, k.Restart, k.Export},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultWalkKeyMap returns default key bindings.
func DefaultWalkKeyMap() WalkKeyMap {
	return WalkKeyMap{
		Plane: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "plane"),
		),
		Flat: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "flat torus"),
		),
		Curved: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "curved torus"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export png"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "text screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to walk actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys WalkKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultWalkKeyMap()}
}

// Keys returns the bindings for help rendering.
func (km *KeyMapper) Keys() WalkKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Plane):
		return core.ActionPlane, false
	case key.Matches(msg, k.Flat):
		return core.ActionFlatTorus, false
	case key.Matches(msg, k.Curved):
		return core.ActionCurvedTorus, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Export):
		return core.ActionExport, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRuns
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "h":
		return MenuActionRuns
	}

	return MenuActionNone
}

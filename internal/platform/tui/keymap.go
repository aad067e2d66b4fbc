package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Normal    key.Binding
	Unlimited key.Binding
	Info      key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Mute      key.Binding
	Pause     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Normal: key.NewBinding(
			key.WithKeys("1", "n"),
			key.WithHelp("1/n", "normal"),
		),
		Unlimited: key.NewBinding(
			key.WithKeys("2", "u"),
			key.WithHelp("2/u", "unlimited"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "ok"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Normal, k.Unlimited, k.Pause, k.Mute, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pause},
		{k.Normal, k.Unlimited, k.Info},
		{k.Confirm, k.Back, k.Mute, k.Quit},
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Normal):
		return core.ActionStartNormal
	case key.Matches(msg, k.Unlimited):
		return core.ActionStartUnlimited
	case key.Matches(msg, k.Info):
		return core.ActionInfo
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// isHeld reports whether an action is a movement key. Terminals send no key
// release events, so movement keys are treated as held for a short window
// after each press or repeat.
func isHeld(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

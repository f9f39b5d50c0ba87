package emulator

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/scrollprompt/internal/prompt"
)

// KeyMap binds terminal keys to device buttons
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Select   key.Binding
	Confirm  key.Binding
	Reject   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the arrow/vim key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "both buttons"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "confirm"),
		),
		Reject: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "reject"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Select, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Select},
		{k.Confirm, k.Reject, k.Quit},
	}
}

// eventFor maps a key press to the button event it produces
func (k KeyMap) eventFor(msg tea.KeyMsg) (prompt.InputEvent, bool) {
	switch {
	case key.Matches(msg, k.Previous):
		return prompt.Previous, true
	case key.Matches(msg, k.Next):
		return prompt.Next, true
	case key.Matches(msg, k.Select):
		return prompt.Select, true
	case key.Matches(msg, k.Confirm):
		return prompt.Confirm, true
	case key.Matches(msg, k.Reject):
		return prompt.Reject, true
	}
	return 0, false
}

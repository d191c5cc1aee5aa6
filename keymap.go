package tourguide

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings used to drive an active tour.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default tour key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", "n", "right"),
			key.WithHelp("enter", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "previous"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "end tour"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Previous, k.Quit}}
}

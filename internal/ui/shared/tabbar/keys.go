package tabbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings a focused tab bar responds to. It implements
// help.KeyMap.
type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Close key.Binding
}

// DefaultKeyMap returns the default tab bar bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "[", "left"),
			key.WithHelp("[/←", "prev tab"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "]", "right"),
			key.WithHelp("]/→", "next tab"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Close}}
}

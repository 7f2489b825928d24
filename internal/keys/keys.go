// Package keys contains keybinding definitions.
package keys

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/zjrosen/tabbar/internal/ui/shared/tabbar"
)

// KeyMap defines the keybindings for the application. Tab navigation
// bindings live on the tab bar itself and are embedded here for help.
type KeyMap struct {
	Tabs tabbar.KeyMap

	// Actions
	NewTab      key.Binding
	Save        key.Binding
	Reload      key.Binding
	ToggleFocus key.Binding
	ToggleASCII key.Binding

	// General
	Help         key.Binding
	ToggleStatus key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tabs: tabbar.DefaultKeyMap(),

		// Actions
		NewTab: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new tab"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save tabs"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload config"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "focus tab bar"),
		),
		ToggleASCII: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "ascii icons"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleStatus: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle status bar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tabs.Prev, k.Tabs.Next, k.NewTab, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tabs.Prev, k.Tabs.Next, k.Tabs.Close},                  // Tabs
		{k.NewTab, k.Save, k.Reload, k.ToggleFocus, k.ToggleASCII}, // Actions
		{k.Help, k.ToggleStatus, k.Quit},                           // General
	}
}

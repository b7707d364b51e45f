package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-level bindings. They are matched before the
// editor sees a key.
type KeyMap struct {
	Toggle   key.Binding
	Settings key.Binding
	Save     key.Binding
	Quit     key.Binding
	Close    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:   key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "focus mode")),
		Settings: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "settings")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Settings, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Close}}
}

// panelKeyMap drives the settings panel.
type panelKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Increase key.Binding
	Decrease key.Binding
	Apply    key.Binding
}

func defaultPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		Next:     key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑/shift+tab", "previous")),
		Increase: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", "increase")),
		Decrease: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "decrease")),
		Apply:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply")),
	}
}

func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Increase, k.Decrease, k.Apply}
}

func (k panelKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

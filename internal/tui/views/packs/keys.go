package packs

import "charm.land/bubbles/v2/key"

// KeyMap is the set of bindings the packs view responds to.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
}

// DefaultKeyMap returns the bindings used when none are supplied.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "done/undo")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Toggle, k.ZoomIn, k.ZoomOut},
	}
}

// withZoom enables the zoom bindings only when zoom is possible.
func (k KeyMap) withZoom(enabled bool) KeyMap {
	k.ZoomIn.SetEnabled(enabled)
	k.ZoomOut.SetEnabled(enabled)
	return k
}

package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings the rotor responds to. Printable characters that
// match no binding feed the search buffer.
type keyMap struct {
	PrevCategory key.Binding
	NextCategory key.Binding
	PrevItem     key.Binding
	NextItem     key.Binding
	Backspace    key.Binding
	Cycle        key.Binding
	Save         key.Binding
	Cancel       key.Binding
	Help         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevCategory: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next category"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev setting"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next setting"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete"),
		),
		Cycle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "change"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevCategory, k.NextCategory, k.PrevItem, k.NextItem, k.Cycle, k.Save, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCategory, k.NextCategory, k.PrevItem, k.NextItem},
		{k.Backspace, k.Cycle},
		{k.Save, k.Cancel, k.Help},
	}
}

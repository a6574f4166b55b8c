package exercise

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Check  key.Binding
	Retry  key.Binding
	Next   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Switch: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("Tab", "Switch side")),
		Grab:   key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Pick up")),
		Drop:   key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("Space", "Drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel drag")),
		Check:  key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("C", "Check")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Try again")),
		Next:   key.NewBinding(key.WithKeys("n"), key.WithHelp("N", "Next")),
	}
}

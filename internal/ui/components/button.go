package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dropcheck/internal/ui/theme"
)

// Button is an action triggered by its own key binding. An inactive button
// is rendered dimmed and ignores its key.
type Button struct {
	Label   string
	Binding key.Binding
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, binding key.Binding, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Binding: binding,
		Active:  active,
		OnPress: onPress,
	}
}

// Update handles key events. The bool result reports whether the button
// consumed the message.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd, bool) {
	if !b.Active {
		return b, nil, false
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, b.Binding) {
		if b.OnPress != nil {
			return b, b.OnPress(), true
		}
		return b, nil, true
	}

	return b, nil, false
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if h := b.Binding.Help().Key; h != "" {
		label = h + "  " + label
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
